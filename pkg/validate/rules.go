// Package validate builds and runs per-field validation rule sets. Rule
// templates are fixed per field kind; the required rule is included only when
// the field demands it and always sits first in the final sequence.
package validate

import (
	"fmt"
	"regexp"

	"github.com/leadstack/leadform/pkg/locale"
)

type RuleKind string

const (
	RuleRequired  RuleKind = "required"
	RuleMinLength RuleKind = "minLength"
	RuleMaxLength RuleKind = "maxLength"
	RulePattern   RuleKind = "pattern"
	RuleEmail     RuleKind = "email"
)

// FieldKind is the closed set of input kinds a capture form can contain.
type FieldKind int

const (
	FieldName FieldKind = iota
	FieldPhone
	FieldEmail
	FieldText
	FieldCheckbox
	FieldRadio
)

func (k FieldKind) String() string {
	switch k {
	case FieldName:
		return "name"
	case FieldPhone:
		return "phone"
	case FieldEmail:
		return "email"
	case FieldText:
		return "text"
	case FieldCheckbox:
		return "checkbox"
	case FieldRadio:
		return "radio"
	}
	return fmt.Sprintf("FieldKind(%d)", int(k))
}

// FieldRule is one validation constraint. Length carries the parameter of
// minLength/maxLength rules, Pattern the compiled expression of pattern rules.
type FieldRule struct {
	Kind    RuleKind
	Length  int
	Pattern *regexp.Regexp
	Message string
}

// Rejection is a recoverable validation failure: shown inline, submission not
// attempted, form stays interactable.
type Rejection struct {
	Field   string
	Message string
}

func (e *Rejection) Error() string {
	return fmt.Sprintf("validate: %s: %s", e.Field, e.Message)
}

// BuildFieldRules returns the ordered rule sequence for one field. The
// required rule, when requested, is always the first element; the rest keep
// their declared template order.
func BuildFieldRules(kind FieldKind, required bool, loc *locale.Locale) []FieldRule {
	var rules []FieldRule

	switch kind {
	case FieldName:
		rules = []FieldRule{
			{Kind: RuleMinLength, Length: 2, Message: loc.MustTranslate(locale.MsgNameMinLength)},
			{Kind: RuleMaxLength, Length: 30, Message: loc.MustTranslate(locale.MsgNameMaxLength)},
			{Kind: RulePattern, Pattern: NameRegex(loc.Code), Message: loc.MustTranslate(locale.MsgNameInvalid)},
		}
	case FieldPhone:
		rules = nil // required is the only template rule; validity is checked by the phone library
	case FieldEmail:
		rules = []FieldRule{
			{Kind: RuleEmail, Message: loc.MustTranslate(locale.MsgEmailInvalid)},
			{Kind: RulePattern, Pattern: EmailRegex(), Message: loc.MustTranslate(locale.MsgEmailInvalid)},
		}
	case FieldText:
		rules = []FieldRule{
			{Kind: RuleMinLength, Length: 3, Message: loc.MustTranslate(locale.MsgTextMinLength)},
			{Kind: RuleMaxLength, Length: 100, Message: loc.MustTranslate(locale.MsgTextMaxLength)},
		}
	case FieldCheckbox, FieldRadio:
		rules = nil
	}

	if required {
		rules = append([]FieldRule{{Kind: RuleRequired, Message: requiredMessage(kind, loc)}}, rules...)
	}
	return rules
}

func requiredMessage(kind FieldKind, loc *locale.Locale) string {
	switch kind {
	case FieldName:
		return loc.MustTranslate(locale.MsgNameRequired)
	case FieldPhone:
		return loc.MustTranslate(locale.MsgPhoneRequired)
	case FieldEmail:
		return loc.MustTranslate(locale.MsgEmailRequired)
	default:
		return loc.MustTranslate(locale.MsgFieldRequired)
	}
}

// Run evaluates value against rules in order; the first failing rule wins.
func Run(field string, value string, rules []FieldRule) error {
	for _, r := range rules {
		if err := check(field, value, r); err != nil {
			return err
		}
	}
	return nil
}

func check(field, value string, r FieldRule) error {
	switch r.Kind {
	case RuleRequired:
		if value == "" {
			return &Rejection{Field: field, Message: r.Message}
		}
	case RuleMinLength:
		if value != "" && len([]rune(value)) < r.Length {
			return &Rejection{Field: field, Message: r.Message}
		}
	case RuleMaxLength:
		if len([]rune(value)) > r.Length {
			return &Rejection{Field: field, Message: r.Message}
		}
	case RuleEmail:
		if value != "" && (!EmailLengthOK(value) || !containsAt(value)) {
			return &Rejection{Field: field, Message: r.Message}
		}
	case RulePattern:
		if value != "" && !r.Pattern.MatchString(value) {
			return &Rejection{Field: field, Message: r.Message}
		}
	}
	return nil
}

func containsAt(s string) bool {
	for i := 1; i < len(s)-1; i++ {
		if s[i] == '@' {
			return true
		}
	}
	return false
}
