package validate

import (
	"testing"

	"github.com/leadstack/leadform/pkg/locale"
)

func mustLocale(t *testing.T, code string) *locale.Locale {
	t.Helper()
	loc, err := locale.Resolve(code)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", code, err)
	}
	return loc
}

func TestRequiredRuleIsAlwaysFirst(t *testing.T) {
	loc := mustLocale(t, "en")
	kinds := []FieldKind{FieldName, FieldPhone, FieldEmail, FieldText, FieldCheckbox, FieldRadio}

	for _, kind := range kinds {
		rules := BuildFieldRules(kind, true, loc)
		if len(rules) == 0 {
			t.Fatalf("%s: no rules built", kind)
		}
		if rules[0].Kind != RuleRequired {
			t.Fatalf("%s: first rule is %s, want required", kind, rules[0].Kind)
		}
	}
}

func TestOptionalFieldOmitsRequired(t *testing.T) {
	loc := mustLocale(t, "en")
	for _, r := range BuildFieldRules(FieldText, false, loc) {
		if r.Kind == RuleRequired {
			t.Fatal("optional text field must not carry a required rule")
		}
	}
}

func TestNameRules(t *testing.T) {
	loc := mustLocale(t, "en")
	rules := BuildFieldRules(FieldName, true, loc)

	cases := []struct {
		value string
		ok    bool
	}{
		{"Ann", true},
		{"", false},          // required
		{"A", false},         // minLength 2
		{"Mary Jane", true},
		{"O'Neil", true},
		{"Bob3", false},      // pattern
	}
	for _, c := range cases {
		err := Run("name", c.value, rules)
		if c.ok && err != nil {
			t.Fatalf("%q: unexpected rejection: %v", c.value, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%q: expected rejection", c.value)
		}
	}
}

func TestNameRegexPolish(t *testing.T) {
	re := NameRegex("pl")
	if !re.MatchString("Łukasz-Marek") {
		t.Fatal("expected Polish name to match")
	}
	if re.MatchString("Lukas123") {
		t.Fatal("expected digits to be rejected")
	}
}

func TestNameRegexDefaultCyrillic(t *testing.T) {
	re := NameRegex("uk")
	if !re.MatchString("Оксана") {
		t.Fatal("expected Ukrainian name to match")
	}
	if re.MatchString("Оксана7") {
		t.Fatal("expected digits to be rejected")
	}
}

func TestEmailRules(t *testing.T) {
	loc := mustLocale(t, "en")
	rules := BuildFieldRules(FieldEmail, true, loc)

	cases := []struct {
		value string
		ok    bool
	}{
		{"ann@example.com", true},
		{"a.n-n+tag@mail.example.org", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"ann@", false},
		{"ann@example", false},
		{"", false}, // required
	}
	for _, c := range cases {
		err := Run("email", c.value, rules)
		if c.ok && err != nil {
			t.Fatalf("%q: unexpected rejection: %v", c.value, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%q: expected rejection", c.value)
		}
	}
}

func TestSanitizePhone(t *testing.T) {
	cases := map[string]string{
		"+1 (202) 555-0123abc": "+1 202 5550123",
		"380 67 123 45 67":     "380 67 123 45 67",
		"+48-123 45":           "+48123 45",
	}
	for in, want := range cases {
		if got := SanitizePhone(in); got != want {
			t.Fatalf("SanitizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePhone(t *testing.T) {
	e164, err := ParsePhone("+1 202 555 0123", "ua", "invalid")
	if err != nil {
		t.Fatalf("valid US number rejected: %v", err)
	}
	if e164 != "+12025550123" {
		t.Fatalf("unexpected E.164: %q", e164)
	}

	_, err = ParsePhone("123", "ua", "invalid")
	if err == nil {
		t.Fatal("expected rejection for a bogus number")
	}
	if rej, ok := err.(*Rejection); !ok || rej.Message != "invalid" {
		t.Fatalf("expected Rejection with caller message, got %v", err)
	}

	// National form resolves against the dial country.
	if _, err := ParsePhone("067 123 45 67", "ua", "invalid"); err != nil {
		t.Fatalf("national UA number rejected: %v", err)
	}
}
