package agent

import (
	"regexp"
	"strings"
)

var fenceOpener = regexp.MustCompile("```[a-zA-Z]*\n?")

// StripCodeFences removes markdown code fences (with or without a language
// tag) the model sometimes wraps its HTML in, then trims surrounding space.
func StripCodeFences(s string) string {
	s = fenceOpener.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
