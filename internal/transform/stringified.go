package transform

import "regexp"

var (
	stringifiedOpenRe = regexp.MustCompile(`(:\s*)"([{\[])(\s*)"`)
	stringifiedTailRe = regexp.MustCompile(`([}\]])"(\s*)([,}\]]|$)`)
)

// PromoteStringifiedValue is T10: recognizes a value that was meant to be
// a nested object/array but got mistakenly quoted as a string, losing its
// internal escaping along the way — the signature is `"key": "` directly
// followed by { or [ and, after whitespace, another quote (the would-be
// first key of the "string"). The opening quote is dropped, then any
// stray quote immediately trailing a } or ] before a delimiter or
// end-of-text is dropped too.
func PromoteStringifiedValue(text string) (string, []string) {
	var diags []string

	next := stringifiedOpenRe.ReplaceAllString(text, `$1$2$3"`)
	if next != text {
		diags = append(diags, "promoted stringified object/array value")
	}
	text = next

	next = stringifiedTailRe.ReplaceAllString(text, "$1$2$3")
	if next != text {
		diags = append(diags, "removed stray quote trailing a promoted value")
	}
	text = next

	return text, diags
}
