package completion

import (
	"net/url"
	"strings"
	"testing"

	"github.com/leadstack/leadform/pkg/payload"
	"github.com/leadstack/leadform/pkg/session"
)

func TestSubstituteDeepLink(t *testing.T) {
	tpl := "https://edu.example.com/uk/dl/intro?email=%7Bemail%7D&phone=%7Bphone%7D&fullname=%7Bname%7D&locale=uk"
	lead := payload.Lead{Name: "Ann", Phone: "+12025550123", Email: "ann@example.com"}

	got := SubstituteDeepLink(tpl, lead)

	if !strings.Contains(got, "fullname=Ann") {
		t.Fatalf("name placeholder not substituted: %q", got)
	}
	if !strings.Contains(got, "phone=+12025550123") {
		t.Fatalf("phone placeholder not substituted: %q", got)
	}
	if !strings.Contains(got, "email=ann@example.com") {
		t.Fatalf("email placeholder not substituted: %q", got)
	}
	if !strings.Contains(got, "locale=uk") {
		t.Fatalf("untouched parameter lost: %q", got)
	}
}

func TestSubstituteDeepLinkSkipsAbsentPlaceholders(t *testing.T) {
	tpl := "https://edu.example.com/uk/dl/intro?fullname=%7Bname%7D&locale=uk"
	got := SubstituteDeepLink(tpl, payload.Lead{Name: "Ann", Phone: "+1", Email: "a@b.co"})

	want := "https://edu.example.com/uk/dl/intro?fullname=Ann&locale=uk"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRewriteIdentityParams(t *testing.T) {
	sess, err := session.FromPageURL("https://edu.example.com/uk/course")
	if err != nil {
		t.Fatal(err)
	}
	sess.ProductName = "Python Basics"
	sess.ProductID = "py-101"
	sess.Cookies = map[string]string{"_ga": "GA1.2.111.222"}

	page, _ := url.Parse("https://edu.example.com/uk/course")
	lead := payload.Lead{Name: "Ann", Phone: "+12025550123", Email: "ann@example.com"}
	marks := map[string]string{"utm_source": "google", "campaignId": "c1"}

	RewriteIdentityParams(page, lead, sess, marks)
	q := page.Query()

	if q.Get("utm_source") != "google" {
		t.Fatalf("utm_source not written: %v", q)
	}
	if q.Get("campaignid") != "c1" {
		t.Fatal("campaignId must be written lowercased for the widget")
	}
	if q.Get("first_name") != "Ann" || q.Get("zoho_product_id") != "py-101" {
		t.Fatalf("identity fields missing: %v", q)
	}
	if q.Get("ga") != "111.222" {
		t.Fatalf("ga client id = %q", q.Get("ga"))
	}
	if _, ok := q["utm_medium"]; ok {
		t.Fatal("absent marks must not be written as empty params")
	}
}

func TestModeFor(t *testing.T) {
	sess, _ := session.FromPageURL("https://edu.example.com/?lead_hash=abc123")
	if ModeFor(sess) != EmbeddedRedirect {
		t.Fatal("lead hash should select the embedded redirect")
	}
	plain, _ := session.FromPageURL("https://edu.example.com/")
	if ModeFor(plain) != InlineNotice {
		t.Fatal("no hash should select the inline notice")
	}
}

func TestInjectWidget(t *testing.T) {
	markup := `<html><head></head><body><form id="modalForm"></form></body></html>`

	got, err := InjectWidget(markup, "abc123")
	if err != nil {
		t.Fatalf("InjectWidget: %v", err)
	}
	if !strings.Contains(got, "wepster-hash-abc123") {
		t.Fatalf("widget container missing: %q", got)
	}
	if !strings.Contains(got, widgetInitScript) {
		t.Fatal("widget loader script missing")
	}
	if !strings.Contains(got, `<form id="modalForm">`) {
		t.Fatal("host markup must survive injection")
	}
}
