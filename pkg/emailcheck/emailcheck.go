// Package emailcheck verifies that an email's domain can actually receive
// mail before the lead is accepted: a cheap syntactic pass locally, then the
// relay's MX-record check remotely.
package emailcheck

import (
	"context"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"github.com/weppos/publicsuffix-go/publicsuffix"
	"golang.org/x/net/idna"

	"github.com/leadstack/leadform/internal/utils"
	"github.com/leadstack/leadform/pkg/whttp"
)

type Checker struct {
	// URL is the domain-check endpoint. Empty disables the remote stage.
	URL      string
	Security string
	Client   *retryablehttp.Client
}

func New(url, security string) *Checker {
	return &Checker{
		URL:      url,
		Security: security,
		Client:   whttp.NewClient(0, 0),
	}
}

// DomainShapeOK reports whether the address's domain normalizes under IDNA
// and has a registrable domain beneath a known public suffix. It catches
// typo-TLDs without a network round trip.
func DomainShapeOK(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain, err := idna.Lookup.ToASCII(email[at+1:])
	if err != nil {
		return false
	}
	// A nil default rule makes unknown TLDs miss the list instead of
	// matching the catch-all "*" rule.
	_, err = publicsuffix.DomainFromListWithOptions(publicsuffix.DefaultList, domain, &publicsuffix.FindOptions{})
	return err == nil
}

// Check runs both stages. Any remote failure fails closed: an unverifiable
// email is treated as nonexistent, the user gets the localized notice and
// can retry.
func (c *Checker) Check(ctx context.Context, email string) bool {
	if !DomainShapeOK(email) {
		return false
	}
	if c.URL == "" {
		return true
	}

	res, err := whttp.SendHTTPRequest(&whttp.WHTTPReq{
		Method: "POST",
		URL:    c.URL,
		Fields: []whttp.FormField{
			{Name: "action", Value: "checkemail"},
			{Name: "security", Value: c.Security},
			{Name: "email", Value: email},
		},
	}, c.Client)
	if err != nil {
		utils.Log.Warnf("emailcheck: request failed: %v", err)
		return false
	}

	return gjson.Get(res.BodyString, "data.status").Str == "ok"
}
