package transform

import (
	"regexp"

	"jsonmend/internal/scanner"
)

var unquotedKeyRe = regexp.MustCompile(`([{\[,\n]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)

const maxKeyQuotingIterations = 10

// QuoteKeys is T4: an identifier immediately after {, [, , or a newline,
// followed by optional whitespace and a colon, is wrapped in double
// quotes. Re-applied to fix-point (bounded) because quoting one key can
// expose the delimiter that lets the next one match.
func QuoteKeys(text string) (string, []string) {
	var diags []string
	for i := 0; i < maxKeyQuotingIterations; i++ {
		changed := false
		next := scanner.SubstituteOutsideStrings(text, unquotedKeyRe, func(groups []string) string {
			changed = true
			diags = append(diags, "quoted unquoted key "+groups[2])
			return groups[1] + `"` + groups[2] + `"` + groups[3]
		})
		text = next
		if !changed {
			break
		}
	}
	return text, diags
}
