// Package i18n holds the closed set of site locales and the
// locale-aware display formatting used by the API responses.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two languages the site serves.
type Locale string

const (
	Hebrew  Locale = "he"
	English Locale = "en"
)

// DefaultLocale is used whenever negotiation fails.
const DefaultLocale = Hebrew

// Parse resolves a raw locale value ("he", "en-US", "he-IL")
// to a supported Locale. The second value reports whether the
// input resolved to a supported language.
func Parse(raw string) (Locale, bool) {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(raw)), "-")
	switch Locale(base) {
	case Hebrew:
		return Hebrew, true
	case English:
		return English, true
	}
	return DefaultLocale, false
}

// Tag returns the BCP-47 tag used for number and date rendering.
func (l Locale) Tag() language.Tag {
	if l == English {
		return language.MustParse("en-US")
	}
	return language.MustParse("he-IL")
}

// Dir reports the writing direction, "rtl" for Hebrew and
// "ltr" for English.
func (l Locale) Dir() string {
	if l == English {
		return "ltr"
	}
	return "rtl"
}

func (l Locale) String() string {
	return string(l)
}

// LocalizedString carries the same text in both site languages.
type LocalizedString struct {
	He string `json:"he"`
	En string `json:"en"`
}

// Get returns the text for the locale, falling back to the other
// language when the requested one is empty.
func (s LocalizedString) Get(l Locale) string {
	switch l {
	case English:
		if s.En != "" {
			return s.En
		}
		return s.He
	default:
		if s.He != "" {
			return s.He
		}
		return s.En
	}
}

// IsZero reports whether both translations are empty.
func (s LocalizedString) IsZero() bool {
	return s.He == "" && s.En == ""
}
