package conversation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitize strips any markup from user-supplied text so it can be embedded in
// HTML-mode messages. Telegram renders entities, so a user typing <b> must
// not be able to style admin screens.
func sanitize(text string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(text))
}

// truncate cuts text at limit runes with an ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
