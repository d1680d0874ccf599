package transform

import (
	"regexp"

	"jsonmend/internal/scanner"
)

var trailingCommaRe = regexp.MustCompile(`,(\s*)([}\]])`)

const maxCommaIterations = 10

// RemoveTrailingCommas is T5: a comma immediately before a closing brace
// or bracket (whitespace tolerated between) is deleted. Runs to
// fix-point because deleting one trailing comma can expose another, e.g.
// `[1, 2,, ]`.
func RemoveTrailingCommas(text string) (string, []string) {
	var diags []string
	for i := 0; i < maxCommaIterations; i++ {
		changed := false
		next := scanner.SubstituteOutsideStrings(text, trailingCommaRe, func(groups []string) string {
			changed = true
			return groups[1] + groups[2]
		})
		text = next
		if !changed {
			break
		}
		diags = append(diags, "removed trailing comma")
	}
	return text, diags
}

var (
	adjacentClosersOpenersRe = regexp.MustCompile(`([}\]"])(\s*)([{\["])`)
	closerNewlineOpenerRe    = regexp.MustCompile(`([}\]])([ \t]*)\n([ \t]*)([{\[])`)
	closerNewlineKeyRe       = regexp.MustCompile(`([}\]])([ \t]*)\n([ \t]*)("[A-Za-z_][A-Za-z0-9_]*"\s*:)`)
	tokenThenKeyRe           = regexp.MustCompile(`([0-9"])(\s*\n?\s*)("[A-Za-z_][A-Za-z0-9_]*"\s*:)`)
	braceDirectRe            = regexp.MustCompile(`(})(\s*)(\{)`)
)

// InsertMissingCommas is T6: several complementary patterns that all
// signal "the author forgot a comma here" — adjacent closer/opener pairs,
// a closing bracket followed by a new object/array on the next line, and
// a number immediately followed by another key. Runs to fix-point:
// inserting one comma can realign the text for the next pattern.
//
// The `"` alternatives in these patterns would start a match on a string
// literal's closing quote, which lies inside the scanner's range for that
// literal, so those matches are skipped: a string value directly followed
// by another string, key, { or [ gets no comma from this transform.
func InsertMissingCommas(text string) (string, []string) {
	var diags []string
	for i := 0; i < maxCommaIterations; i++ {
		changed := false

		text = scanner.SubstituteOutsideStrings(text, braceDirectRe, func(g []string) string {
			changed = true
			diags = append(diags, "inserted missing comma between adjacent } {")
			return g[1] + "," + g[2] + g[3]
		})
		text = scanner.SubstituteOutsideStrings(text, adjacentClosersOpenersRe, func(g []string) string {
			changed = true
			diags = append(diags, "inserted missing comma between adjacent structural tokens")
			return g[1] + "," + g[2] + g[3]
		})
		text = scanner.SubstituteOutsideStrings(text, closerNewlineOpenerRe, func(g []string) string {
			changed = true
			diags = append(diags, "inserted missing comma before next line's opener")
			return g[1] + "," + g[2] + "\n" + g[3] + g[4]
		})
		text = scanner.SubstituteOutsideStrings(text, closerNewlineKeyRe, func(g []string) string {
			changed = true
			diags = append(diags, "inserted missing comma before next line's key")
			return g[1] + "," + g[2] + "\n" + g[3] + g[4]
		})
		text = scanner.SubstituteOutsideStrings(text, tokenThenKeyRe, func(g []string) string {
			changed = true
			diags = append(diags, "inserted missing comma between value and following key")
			return g[1] + "," + g[2] + g[3]
		})

		if !changed {
			break
		}
	}
	return text, diags
}

var missingValueRe = regexp.MustCompile(`(:)(\s*)(,)`)

// FillMissingValues is T7: a key's colon immediately followed by a comma
// (no value was ever written) gets a null substituted in. The pattern
// starts at the colon rather than at the key, because a quoted key's
// quotes lie inside the scanner's string ranges; any colon outside string
// literals followed by a comma is filled.
func FillMissingValues(text string) (string, []string) {
	var diags []string
	out := scanner.SubstituteOutsideStrings(text, missingValueRe, func(g []string) string {
		diags = append(diags, "filled missing value with null")
		return g[1] + " null" + g[3]
	})
	return out, diags
}
