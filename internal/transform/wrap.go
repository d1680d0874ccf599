package transform

import (
	"regexp"
	"strings"
)

var bareKeyPrefixRe = regexp.MustCompile(`^"[^"\\]*(?:\\.[^"\\]*)*"\s*:`)

// WrapBareKV is T9: if the text, once leading whitespace is stripped,
// starts with a quoted-key-and-colon pattern rather than { or [, the
// whole text is wrapped in braces. A caller that pasted one field of an
// object (`"name": "value"`) gets it promoted to a complete object.
func WrapBareKV(text string) (string, []string) {
	trimmed := strings.TrimLeft(text, " \t\n\r")
	if trimmed == "" {
		return text, nil
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return text, nil
	}
	if !bareKeyPrefixRe.MatchString(trimmed) {
		return text, nil
	}
	return "{ " + trimmed + " }", []string{"wrapped bare key-value pair in an object"}
}
