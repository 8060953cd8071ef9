package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// Name character classes per supported locale: letters of that alphabet plus
// space, apostrophe variants and hyphen. The leading dot admits any first
// character, matching the historical behavior of the capture pages.
var nameRegexes = map[string]*regexp.Regexp{
	"pl": regexp.MustCompile("(?i)^.[a-zA-ZĄąĆćĘęŁłŃńÓóŚśŹźŻż 'ʼ`-]{1,}$"),
	"en": regexp.MustCompile("^.[a-zA-Z 'ʼ`-]{1,}$"),
	"ro": regexp.MustCompile("^.[a-zA-ZĂăÂâÎîȘșȚț 'ʼ`-]{1,}$"),
	"es": regexp.MustCompile("^.[a-zA-ZáéíÑñóúü 'ʼ`-]{1,}$"),
	"tr": regexp.MustCompile("^.[a-zA-ZÇçĞğÖöŞşÜü 'ʼ`-]{1,}$"),
}

// Cyrillic class for uk and any locale without its own entry.
var nameRegexDefault = regexp.MustCompile("^.[a-zA-Zа-яА-ЯёЁЇїІіЄєҐґ 'ʼ`-]{1,}$")

// NameRegex returns the name pattern for a locale.
func NameRegex(localeCode string) *regexp.Regexp {
	if re, ok := nameRegexes[localeCode]; ok {
		return re
	}
	return nameRegexDefault
}

// emailRegex is the structural layer on top of the contains-@ check: dot/
// dash/plus separated atoms, a dotted domain, a 2-6 letter TLD. The 3..63
// total length bound is enforced separately (RE2 has no lookahead).
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_+]+([._+-][A-Za-z0-9_+]+)*@[A-Za-z0-9_]+([.-][A-Za-z0-9_]+)*\.[A-Za-z]{2,6}$`)

// EmailRegex returns the structural email pattern.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

// EmailLengthOK reports whether the address length is inside the structural
// pattern's historical 3..63 bound.
func EmailLengthOK(s string) bool {
	return len(s) >= 3 && len(s) <= 63
}

// SanitizePhone keeps only digits and whitespace, preserving a single leading
// plus sign. Applied to the phone field on every input event so the value the
// rules see is already normalized.
func SanitizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	if strings.HasPrefix(s, "+") {
		b.WriteByte('+')
	}
	for _, r := range s {
		if r >= '0' && r <= '9' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
