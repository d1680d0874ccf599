package transform

import (
	"strings"
	"unicode"

	"jsonmend/internal/scanner"
)

// NormalizePythonQuotes is T20: rewrites Python dict-literal single quotes
// ({'key': 'value'}) to JSON double quotes, outside string ranges. Only
// structural quotes are converted — one bordered by {, [, , or : on one
// side, or :, ,, }, ] on the other — so an apostrophe inside an
// already-double-quoted string is left alone by the scanner's ranges, and
// genuinely ambiguous single quotes in bare (unquoted) text are left for
// a human to resolve rather than guessed at.
func NormalizePythonQuotes(text string) (string, []string) {
	ranges := scanner.StringRanges(text)
	runes := []rune(text)
	byteOffsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteOffsets[i] = off
		off += len(string(r))
	}
	byteOffsets[len(runes)] = off

	var out strings.Builder
	changed := 0
	for i, r := range runes {
		if r == '\'' && scanner.IsOutsideStrings(byteOffsets[i], ranges) && isStructuralQuote(runes, i) {
			out.WriteRune('"')
			changed++
			continue
		}
		out.WriteRune(r)
	}
	if changed == 0 {
		return text, nil
	}
	return out.String(), []string{"normalized python-style quotes"}
}

// isStructuralQuote decides whether the single quote at pos is part of
// JSON-shaped structure (a dict key or value delimiter) rather than an
// apostrophe inside prose. Positional heuristic: look at the nearest
// non-space neighbor on each side.
func isStructuralQuote(runes []rune, pos int) bool {
	prev := -1
	for i := pos - 1; i >= 0; i-- {
		if !unicode.IsSpace(runes[i]) {
			prev = i
			break
		}
	}
	next := -1
	for i := pos + 1; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) {
			next = i
			break
		}
	}

	if prev == -1 || next == -1 {
		return true
	}
	switch runes[prev] {
	case '{', '[', ',', ':':
		return true
	}
	switch runes[next] {
	case ':', ',', '}', ']':
		return true
	}
	return false
}
