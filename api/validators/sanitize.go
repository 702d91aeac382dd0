package validators

import (
	"strings"
	"unicode/utf8"
)

// SanitizeString trims input and, when maxLen is positive, cuts it to at most
// maxLen bytes without splitting a UTF-8 sequence.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 || len(trimmed) <= maxLen {
		return trimmed
	}
	cut := trimmed[:maxLen]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
