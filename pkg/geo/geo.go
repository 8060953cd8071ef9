// Package geo resolves the visitor's network origin once per page session.
// Every stage is best-effort: a failing lookup downgrades to the next one and
// the pipeline never blocks form availability on enrichment.
package geo

import (
	"context"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/leadstack/leadform/internal/utils"
	"github.com/leadstack/leadform/pkg/whttp"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultTraceURL  = "https://www.cloudflare.com/cdn-cgi/trace"
	DefaultLookupURL = "https://ip.nf/me.json"
)

// Info is the cached enrichment result. Empty fields mean the lookup chain
// bottomed out; the submission builder passes them through as-is.
type Info struct {
	IP      string
	Country string
}

type Resolver struct {
	TraceURL       string
	LookupURL      string
	DefaultCountry string
	Client         *retryablehttp.Client

	once sync.Once
	info Info
}

func NewResolver(traceURL, lookupURL, defaultCountry string) *Resolver {
	if traceURL == "" {
		traceURL = DefaultTraceURL
	}
	if lookupURL == "" {
		lookupURL = DefaultLookupURL
	}
	return &Resolver{
		TraceURL:       traceURL,
		LookupURL:      lookupURL,
		DefaultCountry: defaultCountry,
		Client:         whttp.NewClient(2, 0),
	}
}

// Resolve runs the lookup chain on first call and returns the cached Info on
// every call after that. It never fails: the worst outcome is the configured
// default country with no IP.
func (r *Resolver) Resolve(ctx context.Context) Info {
	r.once.Do(func() {
		r.info = r.resolve(ctx)
	})
	return r.info
}

func (r *Resolver) resolve(_ context.Context) Info {
	info := Info{Country: r.DefaultCountry}

	trace, err := r.fetchTrace()
	if err != nil {
		utils.Log.Warnf("geo: trace endpoint failed, degrading to geo-IP lookup: %v", err)
	} else {
		info.IP = trace["ip"]
		if loc := strings.ToLower(trace["loc"]); loc != "" {
			info.Country = loc
			return info
		}
	}

	country, err := r.fetchLookup()
	if err != nil {
		utils.Log.Warnf("geo: geo-IP lookup failed, degrading to default country %q: %v", r.DefaultCountry, err)
		return info
	}
	if country != "" {
		info.Country = country
	}
	return info
}

// fetchTrace parses a cdn-cgi/trace style body of key=value lines.
func (r *Resolver) fetchTrace() (map[string]string, error) {
	res, err := whttp.SendHTTPRequest(&whttp.WHTTPReq{
		Method: "GET",
		URL:    r.TraceURL,
	}, r.Client)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(res.BodyString), "\n") {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out, nil
}

func (r *Resolver) fetchLookup() (string, error) {
	res, err := whttp.SendHTTPRequest(&whttp.WHTTPReq{
		Method: "GET",
		URL:    r.LookupURL,
	}, r.Client)
	if err != nil {
		return "", err
	}
	return strings.ToLower(gjson.Get(res.BodyString, "ip.country_code").Str), nil
}
