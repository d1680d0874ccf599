package transform

import (
	"regexp"

	"jsonmend/internal/scanner"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
)

// StripComments is T2: removes /* ... */ and // ... end-of-line comments,
// but only outside string literals. A URL like "http://example.com" or a
// Windows path in a string value must survive untouched.
func StripComments(text string) (string, []string) {
	var diags []string

	out := scanner.SubstituteOutsideStrings(text, blockCommentRe, func(groups []string) string {
		diags = append(diags, "removed block comment")
		return ""
	})
	out = scanner.SubstituteOutsideStrings(out, lineCommentRe, func(groups []string) string {
		diags = append(diags, "removed line comment")
		return ""
	})
	return out, diags
}
