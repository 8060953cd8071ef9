package payload

import (
	"testing"

	"github.com/leadstack/leadform/pkg/geo"
	"github.com/leadstack/leadform/pkg/session"
	"github.com/leadstack/leadform/pkg/whttp"
)

func fieldValue(fields []whttp.FormField, name string) (string, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func testSession(t *testing.T) *session.Context {
	t.Helper()
	sess, err := session.FromPageURL("https://edu.example.com/uk/course?utm_source=google&lead_hash=abc")
	if err != nil {
		t.Fatal(err)
	}
	sess.LocaleCode = "uk"
	sess.ProductName = "Python Basics"
	sess.ProductID = "py-101"
	sess.TemplateVersion = "v1.2.0"
	sess.Security = "nonce"
	sess.Post = "42"
	sess.UserAgent = "Mozilla/5.0"
	sess.Cookies = map[string]string{
		"_ga":  "GA1.2.1191633100.1660000000",
		"_fbp": "fb.1.1660000000.123",
	}
	return sess
}

func TestBuildFullFieldSet(t *testing.T) {
	b := &Builder{Project: "EduSite", Category: "Course"}
	lead := Lead{Name: "  Ann  ", Phone: "+12025550123", Email: "ann@example.com"}

	fields := b.Build(lead, testSession(t), geo.Info{IP: "203.0.113.7", Country: "ua"},
		map[string]string{"utm_source": "google", "utm_campaign": "x"})

	want := map[string]string{
		"action":             "forms",
		"security":           "nonce",
		"post":               "42",
		"locale":             "uk",
		"name":               "Ann",
		"phone":              "+12025550123",
		"email":              "ann@example.com",
		"product_name":       "Python Basics",
		"product_id":         "py-101",
		"templateVersion":    "v1.2.0",
		"SiteURL":            "https://edu.example.com/uk/course",
		"Projects":           "EduSite",
		"Potential_Category": "Course",
		"Course":             "py-101",
		"leadActionSource":   "https://edu.example.com/uk/course",
		"leadFormat":         "marathon",
		"leadIP":             "203.0.113.7",
		"leadUserAgent":      "Mozilla/5.0",
		"google_id":          "1191633100.1660000000",
		"leadFBP":            "fb.1.1660000000.123",
		"utm_source":         "google",
		"utm_campaign":       "x",
	}
	for name, value := range want {
		got, ok := fieldValue(fields, name)
		if !ok {
			t.Fatalf("field %q missing", name)
		}
		if got != value {
			t.Fatalf("field %q = %q, want %q", name, got, value)
		}
	}

	// first field must be the relay action
	if fields[0].Name != "action" {
		t.Fatalf("expected action first, got %q", fields[0].Name)
	}
}

func TestBuildMissingEnrichmentIsEmptyNotFatal(t *testing.T) {
	b := &Builder{}
	sess := testSession(t)
	sess.Cookies = nil

	fields := b.Build(Lead{Name: "Ann", Phone: "+1", Email: "a@b.co"}, sess, geo.Info{}, nil)

	for _, name := range []string{"google_id", "leadFBC", "leadFBP", "leadIP", "utm_source", "adId"} {
		got, ok := fieldValue(fields, name)
		if !ok {
			t.Fatalf("field %q must be present even when empty", name)
		}
		if got != "" {
			t.Fatalf("field %q = %q, want empty", name, got)
		}
	}
}

func TestClientID(t *testing.T) {
	cases := map[string]string{
		"GA1.2.1191633100.1660000000": "1191633100.1660000000",
		"GA1.2.1.2.3":                 "1.2",
		"GA1.2":                       "",
		"":                            "",
	}
	for in, want := range cases {
		if got := ClientID(in); got != want {
			t.Fatalf("ClientID(%q) = %q, want %q", in, got, want)
		}
	}
}
