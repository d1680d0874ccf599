package transform

import "strings"

// LineEndings is T1: CRLF and lone CR are normalized to LF. It runs over
// the whole text including string interiors — JSON has no meaning for a
// raw CR inside a literal, so collapsing it is always safe.
func LineEndings(text string) (string, []string) {
	if !strings.ContainsRune(text, '\r') {
		return text, nil
	}
	out := strings.ReplaceAll(text, "\r\n", "\n")
	out = strings.ReplaceAll(out, "\r", "\n")
	return out, []string{"normalized line endings"}
}
