package validate

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ParsePhone parses a sanitized phone value against the visitor's dial
// country and returns the E.164 form. Invalid numbers come back as a
// Rejection carrying the caller-supplied message.
func ParsePhone(raw, dialCountry, message string) (string, error) {
	num, err := phonenumbers.Parse(raw, strings.ToUpper(dialCountry))
	if err != nil {
		return "", &Rejection{Field: "phone", Message: message}
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", &Rejection{Field: "phone", Message: message}
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
