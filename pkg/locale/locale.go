// Package locale resolves the active locale of a capture page into the
// phone-input defaults and the localized message bundle every other part of
// the pipeline reads from.
package locale

import (
	"fmt"

	"github.com/leadstack/leadform/internal/utils"
)

// DefaultCode is used when a page carries no locale at all.
const DefaultCode = "uk"

// dialCountries maps a page locale to the default phone dial country.
// English pages are served to the Philippines market, hence "ph".
var dialCountries = map[string]string{
	"pl": "pl",
	"en": "ph",
	"ro": "ro",
	"es": "es",
	"tr": "tr",
}

const defaultDialCountry = "ua"

// ExcludedDialCountries are never offered as a phone country.
var ExcludedDialCountries = []string{"ru", "by"}

// ConfigurationError means the resolved locale has no message dictionary.
// It is fatal to the affected form handler: initialization must abort rather
// than let the form submit with untranslatable notices.
type ConfigurationError struct {
	Code string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("locale: no dictionary for %q, add it to the message bundles", e.Code)
}

// Bundle is the message dictionary of one locale, immutable after Resolve.
type Bundle map[string]string

// Locale carries everything locale-dependent the pipeline needs.
type Locale struct {
	Code        string
	DialCountry string
	// PreferredDialCountries are listed first in the phone country picker.
	PreferredDialCountries []string

	bundle Bundle
}

// Resolve normalizes a locale code and loads its bundle. An empty code falls
// back to DefaultCode with a configuration warning; an unknown code resolves
// to the default dial country but still requires a dictionary entry.
func Resolve(code string) (*Locale, error) {
	if code == "" {
		utils.Log.Warnf("locale is not set, falling back to %q; set it in the page config", DefaultCode)
		code = DefaultCode
	}

	bundle, ok := messages[code]
	if !ok {
		return nil, &ConfigurationError{Code: code}
	}

	dial, ok := dialCountries[code]
	if !ok {
		dial = defaultDialCountry
	}

	return &Locale{
		Code:                   code,
		DialCountry:            dial,
		PreferredDialCountries: []string{dial},
		bundle:                 bundle,
	}, nil
}

// Translate returns the localized message for key.
func (l *Locale) Translate(key string) (string, error) {
	msg, ok := l.bundle[key]
	if !ok {
		return "", fmt.Errorf("locale: no message for key %q in %q", key, l.Code)
	}
	return msg, nil
}

// MustTranslate is Translate for keys that are known at compile time.
// A miss here is a programming error, not a configuration one.
func (l *Locale) MustTranslate(key string) string {
	msg, err := l.Translate(key)
	if err != nil {
		panic(err)
	}
	return msg
}

// Supported reports whether code has a message dictionary.
func Supported(code string) bool {
	_, ok := messages[code]
	return ok
}

// Codes lists every locale with a dictionary.
func Codes() []string {
	out := make([]string, 0, len(messages))
	for code := range messages {
		out = append(out, code)
	}
	return out
}
