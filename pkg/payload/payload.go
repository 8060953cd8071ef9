// Package payload assembles the outbound relay field set from the validated
// lead, the session context, geo enrichment and the attribution snapshot.
// Missing enrichment data degrades to empty values; the builder never fails
// on anything but the caller forgetting a required user field upstream.
package payload

import (
	"strings"

	"github.com/leadstack/leadform/pkg/attribution"
	"github.com/leadstack/leadform/pkg/geo"
	"github.com/leadstack/leadform/pkg/session"
	"github.com/leadstack/leadform/pkg/whttp"
)

// DefaultLeadFormat is used when the page does not override it.
const DefaultLeadFormat = "marathon"

// Lead is the validated user input of one submission.
type Lead struct {
	Name  string
	Phone string // E.164
	Email string
}

// Builder carries the relay-side constants of the deployment.
type Builder struct {
	// Project and Category tag the lead for CRM routing.
	Project  string
	Category string
}

// Build produces the relay field list. Field order matches the relay's
// historical contract and is preserved by the multipart encoder.
func (b *Builder) Build(lead Lead, sess *session.Context, info geo.Info, marks map[string]string) []whttp.FormField {
	actionSource := sess.ActionSource()

	leadFormat := sess.LeadFormat
	if leadFormat == "" {
		leadFormat = DefaultLeadFormat
	}

	fields := []whttp.FormField{
		{Name: "action", Value: "forms"},
		{Name: "security", Value: sess.Security},
		{Name: "post", Value: sess.Post},
		{Name: "locale", Value: sess.LocaleCode},
		{Name: "name", Value: strings.TrimSpace(lead.Name)},
		{Name: "phone", Value: lead.Phone},
		{Name: "email", Value: lead.Email},
		{Name: "product_name", Value: sess.ProductName},
		{Name: "product_id", Value: sess.ProductID},
		{Name: "templateVersion", Value: sess.TemplateVersion},
		{Name: "SiteURL", Value: actionSource},
		{Name: "website", Value: "website"},
		{Name: "Projects", Value: b.Project},
		{Name: "Potential_Category", Value: b.Category},
		{Name: "Course", Value: sess.ProductID},
		{Name: "leadActionSource", Value: actionSource},
		{Name: "leadFormat", Value: leadFormat},
		{Name: "leadIP", Value: info.IP},
		{Name: "leadUserAgent", Value: sess.UserAgent},
		{Name: "google_id", Value: ClientID(sess.Cookie("_ga"))},
		{Name: "leadFBC", Value: sess.Cookie("_fbc")},
		{Name: "leadFBP", Value: sess.Cookie("_fbp")},
	}

	for _, mark := range attribution.Marks {
		fields = append(fields, whttp.FormField{Name: mark, Value: marks[mark]})
	}
	return fields
}

// ClientID extracts the analytics client id from a _ga cookie value: the
// third and fourth dot-separated segments. The positional split is fragile
// against cookie-format changes; a malformed cookie yields an empty id, it
// never fails the build.
func ClientID(gaCookie string) string {
	parts := strings.Split(gaCookie, ".")
	if len(parts) < 4 {
		return ""
	}
	return parts[2] + "." + parts[3]
}
