package telegram

import (
	"strings"
	"unicode/utf8"
)

// maxMessageLength is Telegram's per-message limit, measured in runes.
const maxMessageLength = 4096

// splitMessage cuts a long message into chunks that fit the limit. It
// prefers paragraph boundaries, then line boundaries, and hard-cuts at a
// rune boundary only as a last resort.
func splitMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = maxMessageLength
	}
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for utf8.RuneCountInString(text) > limit {
		byteLimit := runeByteOffset(text, limit)
		cut := byteLimit

		if idx := strings.LastIndex(text[:byteLimit], "\n\n"); idx > 0 {
			cut = idx + 2
		} else if idx := strings.LastIndex(text[:byteLimit], "\n"); idx > 0 {
			cut = idx + 1
		}

		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if len(text) > 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

// runeByteOffset returns the byte offset of the n-th rune in s, or len(s)
// when s is shorter.
func runeByteOffset(s string, n int) int {
	offset := 0
	for i := 0; i < n && offset < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}
