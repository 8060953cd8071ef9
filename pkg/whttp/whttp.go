package whttp

import (
	"bytes"
	"io"
	stdlog "log"
	"mime/multipart"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type WHTTPHeader struct {
	Name  string
	Value string
}

// FormField is one multipart form value. Order is preserved on the wire.
type FormField struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL     string
	Method  string
	Headers []WHTTPHeader
	// Fields, when non-nil, is encoded as a multipart/form-data body.
	Fields []FormField
}

type WHTTPRes struct {
	StatusCode int
	BodyString string
}

const defaultUserAgent = "leadform/2.0 (+https://github.com/leadstack/leadform)"

// NewClient returns a retryablehttp client with the given retry budget and a
// silenced internal logger. The relay client must use retries = 0: a failed
// submission is resubmitted by the user, never by the transport.
func NewClient(retries int, timeout time.Duration) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.Logger = stdlog.New(io.Discard, "", 0)
	c.RetryMax = retries
	// A response that exhausts the retry budget is still a response; the
	// caller decides what a non-200 means.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if timeout > 0 {
		c.HTTPClient.Timeout = timeout
	}
	return c
}

func SendHTTPRequest(wReq *WHTTPReq, client *retryablehttp.Client) (*WHTTPRes, error) {
	var body io.Reader
	contentType := ""

	if wReq.Fields != nil {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for _, f := range wReq.Fields {
			if err := mw.WriteField(f.Name, f.Value); err != nil {
				return nil, err
			}
		}
		if err := mw.Close(); err != nil {
			return nil, err
		}
		body = buf
		contentType = mw.FormDataContentType()
	}

	req, err := retryablehttp.NewRequest(wReq.Method, wReq.URL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept-Language", "en")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, h := range wReq.Headers {
		req.Header.Add(h.Name, h.Value)
	}

	if client == nil {
		client = NewClient(0, 0)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &WHTTPRes{
		StatusCode: resp.StatusCode,
		BodyString: string(bodyBytes),
	}, nil
}
