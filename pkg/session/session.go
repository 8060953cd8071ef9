// Package session carries the page-level inputs of one capture session as an
// explicit value. Components receive it at construction instead of reaching
// for ambient page state.
package session

import (
	"net/http"
	"net/url"
	"strings"
)

// Context is read-only after construction. One Context describes one page
// load; independent forms on the same page share it.
type Context struct {
	LocaleCode string
	PageURL    *url.URL
	UserAgent  string

	ProductName string
	ProductID   string

	// TemplateVersion identifies the page template generation for the relay.
	TemplateVersion string

	// LeadHash routes the lead into the embedded CRM widget. A non-empty
	// hash selects the embedded-redirect completion mode.
	LeadHash string

	// DeepLink is a URL template with {name}/{phone}/{email} placeholders.
	DeepLink string

	// WidgetToken enables external-id propagation to the embedded widget.
	WidgetToken string

	// Security is the relay's request token.
	Security string

	// Post identifies the originating page record for the relay.
	Post string

	LeadFormat string

	Cookies map[string]string
}

// FromPageURL builds a Context from a raw page URL, pulling the query
// parameters the pipeline consumes. Remaining fields are filled by the
// caller from its own configuration.
func FromPageURL(raw string) (*Context, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	return &Context{
		LocaleCode:      q.Get("locale"),
		PageURL:         u,
		LeadHash:        q.Get("lead_hash"),
		DeepLink:        q.Get("deeplink"),
		TemplateVersion: q.Get("template_version"),
		WidgetToken:     q.Get("widget_token"),
		Cookies:         map[string]string{},
	}, nil
}

// FromRequest builds a Context from a capture request: the page URL comes
// from the page_url form value, falling back to the Referer header, and the
// visitor's user agent and cookies ride along.
func FromRequest(r *http.Request) (*Context, error) {
	pageURL := r.FormValue("page_url")
	if pageURL == "" {
		pageURL = r.Referer()
	}

	c, err := FromPageURL(pageURL)
	if err != nil {
		return nil, err
	}
	if c.LocaleCode == "" {
		c.LocaleCode = r.FormValue("locale")
	}
	c.UserAgent = r.UserAgent()
	for _, cookie := range r.Cookies() {
		c.Cookies[cookie.Name] = cookie.Value
	}
	return c, nil
}

// Query returns the page URL's query parameters.
func (c *Context) Query() url.Values {
	if c.PageURL == nil {
		return url.Values{}
	}
	return c.PageURL.Query()
}

// ActionSource is the page address without query or fragment, used as both
// the site URL and the lead action source.
func (c *Context) ActionSource() string {
	if c.PageURL == nil {
		return ""
	}
	u := *c.PageURL
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "#")
}

// Cookie returns a cookie value, empty when absent.
func (c *Context) Cookie(name string) string {
	return c.Cookies[name]
}
