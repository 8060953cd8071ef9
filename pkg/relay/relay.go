// Package relay posts the assembled lead payload to the backend relay
// endpoint. One attempt per submission: a retry is the user resubmitting,
// never the transport looping on its own.
package relay

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/leadstack/leadform/pkg/whttp"
)

// TransportError is a recoverable network-level failure. The form is
// restored and stays interactable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("relay: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Result is the relay's settled response.
type Result struct {
	StatusCode int
	Body       string
	// ExternalID is the downstream system's lead identifier, when the relay
	// returns one.
	ExternalID string
}

// OK reports a successful relay outcome. Anything but 200 is failure.
func (r Result) OK() bool { return r.StatusCode == 200 }

type Client struct {
	URL  string
	HTTP *retryablehttp.Client
}

func New(url string) *Client {
	// RetryMax 0: the single-attempt contract lives here, not in callers.
	return &Client{URL: url, HTTP: whttp.NewClient(0, 0)}
}

type outcome struct {
	res Result
	err error
}

// Pending is an in-flight submission. It cannot be aborted; abandoning it
// simply leaves the goroutine to finish on its own.
type Pending struct {
	ch chan outcome
}

// Wait blocks until the transport settles or ctx is done.
func (p *Pending) Wait(ctx context.Context) (Result, error) {
	select {
	case o := <-p.ch:
		return o.res, o.err
	case <-ctx.Done():
		return Result{}, &TransportError{Err: ctx.Err()}
	}
}

// Submit dispatches the payload and returns immediately with a Pending.
func (c *Client) Submit(ctx context.Context, fields []whttp.FormField) *Pending {
	p := &Pending{ch: make(chan outcome, 1)}

	go func() {
		res, err := whttp.SendHTTPRequest(&whttp.WHTTPReq{
			Method: "POST",
			URL:    c.URL,
			Fields: fields,
		}, c.HTTP)
		if err != nil {
			p.ch <- outcome{err: &TransportError{Err: err}}
			return
		}
		p.ch <- outcome{res: Result{
			StatusCode: res.StatusCode,
			Body:       res.BodyString,
			ExternalID: gjson.Get(res.BodyString, "intelza_id").Str,
		}}
	}()

	return p
}
