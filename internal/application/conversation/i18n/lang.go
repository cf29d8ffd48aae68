// Package i18n holds the user-facing message catalog. One function per
// message, branching per language, HTML formatting inline.
package i18n

import "deskbot/internal/shared/lang"

// Lang aliases the shared language type so catalog messages key off it directly.
type Lang = lang.Lang

const (
	EN = lang.EN
	RU = lang.RU
)

// ParseLang parses a stored language string into Lang, defaulting to EN
func ParseLang(s string) Lang {
	return lang.Parse(s)
}
