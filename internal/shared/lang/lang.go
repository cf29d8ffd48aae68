// Package lang resolves which supported reply language to use for a user.
package lang

import "golang.org/x/text/language"

// Lang represents a supported language
type Lang string

const (
	EN Lang = "en"
	RU Lang = "ru"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
})

// Detect matches Telegram's language_code against the supported set,
// falling back to English.
func Detect(languageCode string) Lang {
	if languageCode == "" {
		return EN
	}
	tag, err := language.Parse(languageCode)
	if err != nil {
		return EN
	}
	_, index, _ := matcher.Match(tag)
	if index == 1 {
		return RU
	}
	return EN
}

// Parse parses a stored language string into Lang, defaulting to EN
func Parse(s string) Lang {
	if Lang(s) == RU {
		return RU
	}
	return EN
}
