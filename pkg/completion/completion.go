// Package completion routes a settled submission into one of the two
// downstream finishes: an inline notice on the page, or a redirect into the
// embedded CRM widget.
package completion

import (
	"context"
	"net/url"
	"strings"

	"github.com/leadstack/leadform/internal/utils"
	"github.com/leadstack/leadform/pkg/attribution"
	"github.com/leadstack/leadform/pkg/locale"
	"github.com/leadstack/leadform/pkg/payload"
	"github.com/leadstack/leadform/pkg/relay"
	"github.com/leadstack/leadform/pkg/session"
)

// Mode selects the completion path. Resolved once when a form handler is
// initialized and fixed for its lifetime.
type Mode int

const (
	// InlineNotice shows a localized success banner on the page.
	InlineNotice Mode = iota
	// EmbeddedRedirect hands the lead over to the embedded CRM widget.
	EmbeddedRedirect
)

func (m Mode) String() string {
	if m == EmbeddedRedirect {
		return "embedded-redirect"
	}
	return "inline-notice"
}

// ModeFor picks the completion mode from the session: a lead-routing hash
// means the embedded widget owns the finish.
func ModeFor(sess *session.Context) Mode {
	if sess.LeadHash != "" {
		return EmbeddedRedirect
	}
	return InlineNotice
}

// View is the slice of the form surface the router drives.
type View interface {
	ShowForm()
	HideForm()
	Reset()
	SetStep(step int)
	NotifySuccess(msg string)
	NotifyError(msg string)
	// MountWidget receives the page markup with the widget container
	// injected. Only the embedded path calls it.
	MountWidget(markup string)
}

// Router consumes the transport outcome for one form.
type Router struct {
	Mode       Mode
	Locale     *locale.Locale
	Session    *session.Context
	WidgetHash string
	// PageMarkup is the host page fragment the widget is injected into.
	PageMarkup string
}

// Finish waits for the pending transport result and drives the view through
// the matching completion branch. It reports whether the submission reached
// a completed state.
func (r *Router) Finish(ctx context.Context, pending *relay.Pending, lead payload.Lead, marks map[string]string, view View) bool {
	res, err := pending.Wait(ctx)
	if err != nil {
		utils.Log.Warnf("completion: %v", err)
		r.fail(view)
		return false
	}
	if !res.OK() {
		utils.Log.Warnf("completion: relay returned %d", res.StatusCode)
		r.fail(view)
		return false
	}

	switch r.Mode {
	case EmbeddedRedirect:
		r.finishEmbedded(res, lead, marks, view)
	default:
		r.finishInline(view)
	}
	return true
}

func (r *Router) fail(view View) {
	view.ShowForm()
	view.NotifyError(r.Locale.MustTranslate(locale.MsgTryAgain))
}

func (r *Router) finishInline(view View) {
	view.Reset()
	view.SetStep(3)
	view.NotifySuccess(r.Locale.MustTranslate(locale.MsgReply))
	view.ShowForm()
}

func (r *Router) finishEmbedded(res relay.Result, lead payload.Lead, marks map[string]string, view View) {
	sess := r.Session
	page := *sess.PageURL

	RewriteIdentityParams(&page, lead, sess, marks)
	SetParam(&page, "name2", lead.Name)
	SetParam(&page, "template_version", sess.TemplateVersion)
	if sess.WidgetToken != "" {
		SetParam(&page, "elza_id", res.ExternalID)
	}
	if sess.DeepLink != "" {
		SetParam(&page, "lms_deeplink", SubstituteDeepLink(sess.DeepLink, lead))
	}
	sess.PageURL.RawQuery = page.RawQuery

	markup, err := InjectWidget(r.PageMarkup, r.WidgetHash)
	if err != nil {
		// The lead is already accepted upstream; degrade to the inline finish.
		utils.Log.Errorf("completion: widget injection failed: %v", err)
		r.finishInline(view)
		return
	}
	view.MountWidget(markup)
	view.HideForm()
	view.Reset()
	view.SetStep(3)
}

// identityParams maps payload keys to the query parameter names the embedded
// widget consumes.
var identityParams = map[string]string{
	"utm_source":   "utm_source",
	"utm_medium":   "utm_medium",
	"utm_term":     "utm_term",
	"utm_campaign": "utm_campaign",
	"utm_content":  "utm_content",
	"campaignId":   "campaignid",
	"adsetId":      "adsetid",
	"adId":         "adid",
}

// RewriteIdentityParams writes the lead's identity and attribution into the
// page URL for the embedded widget's own consumption. Empty values are
// skipped, not written as blanks.
func RewriteIdentityParams(page *url.URL, lead payload.Lead, sess *session.Context, marks map[string]string) {
	for _, mark := range attribution.Marks {
		if v := marks[mark]; v != "" {
			SetParam(page, identityParams[mark], v)
		}
	}
	SetParam(page, "ga", payload.ClientID(sess.Cookie("_ga")))
	SetParam(page, "first_name", lead.Name)
	SetParam(page, "phone", lead.Phone)
	SetParam(page, "email", lead.Email)
	SetParam(page, "zoho_product_name", sess.ProductName)
	SetParam(page, "zoho_product_id", sess.ProductID)
}

// SetParam sets or replaces one query parameter in place. Empty values are
// dropped silently.
func SetParam(page *url.URL, key, value string) {
	if value == "" {
		return
	}
	q := page.Query()
	q.Set(key, value)
	page.RawQuery = q.Encode()
}

// Deep-link placeholders, literally as they appear in the template URL.
const (
	linkName  = "fullname=%7Bname%7D"
	linkPhone = "phone=%7Bphone%7D"
	linkEmail = "email=%7Bemail%7D"
)

// SubstituteDeepLink fills the named placeholders of a deep-link template
// with lead data. Substitution is literal: placeholders not present in the
// template are skipped and everything else is left untouched, matching what
// the downstream LMS expects.
func SubstituteDeepLink(template string, lead payload.Lead) string {
	link := template
	if strings.Contains(link, linkName) {
		link = strings.Replace(link, linkName, "fullname="+lead.Name, 1)
	}
	if strings.Contains(link, linkPhone) {
		link = strings.Replace(link, linkPhone, "phone="+lead.Phone, 1)
	}
	if strings.Contains(link, linkEmail) {
		link = strings.Replace(link, linkEmail, "email="+lead.Email, 1)
	}
	return link
}
