package transform

import (
	"regexp"

	"jsonmend/internal/scanner"
)

var literalRe = regexp.MustCompile(`\b(True|False|NULL)\b`)

var literalLower = map[string]string{
	"True":  "true",
	"False": "false",
	"NULL":  "null",
}

// NormalizeLiterals is T3: word-bounded Python/SQL-style literals are
// lowercased to their JSON spelling, outside string literals only.
// Already-lowercase forms pass through untouched.
func NormalizeLiterals(text string) (string, []string) {
	var diags []string
	out := scanner.SubstituteOutsideStrings(text, literalRe, func(groups []string) string {
		repl := literalLower[groups[0]]
		diags = append(diags, "normalized literal "+groups[0]+" to "+repl)
		return repl
	})
	return out, diags
}
