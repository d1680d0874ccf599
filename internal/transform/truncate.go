package transform

import (
	"strings"

	"jsonmend/internal/jsonstrict"
	"jsonmend/internal/scanner"
)

// TruncateGarbageTail is T17: finds the greatest offset at which a } or ]
// appears outside any string literal. If non-whitespace content follows
// that offset, the text is cut to end immediately after that bracket —
// trailing prose, a second concatenated document, or truncation noise is
// discarded rather than fought with.
func TruncateGarbageTail(text string) (string, []string) {
	ranges := scanner.StringRanges(text)
	last := -1
	for i := 0; i < len(text); i++ {
		if (text[i] == '}' || text[i] == ']') && scanner.IsOutsideStrings(i, ranges) {
			last = i
		}
	}
	if last < 0 {
		return text, nil
	}
	tail := text[last+1:]
	if strings.TrimSpace(tail) == "" {
		return text, nil
	}
	return text[:last+1], []string{"truncated garbage tail after position " + itoa(last + 1)}
}

// TruncateAtErrorPosition is T18: given the strict parser's character
// offset, cuts the text there and runs T17 over the result, since the
// true end of the salvageable document is usually the last structural
// closer before the offset the parser choked on, not the offset itself.
//
// perr.Offset is a rune offset (jsonstrict runs its parser over []rune,
// per error.go), not a byte offset, so a non-ASCII prefix must be sliced
// by rune position and re-encoded rather than indexed directly into the
// UTF-8 byte string — otherwise multi-byte text truncates mid-rune or at
// the wrong point entirely.
func TruncateAtErrorPosition(text string, perr *jsonstrict.ParseError) (string, []string) {
	if perr == nil {
		return text, nil
	}
	runes := []rune(text)
	n := perr.Offset
	if n < 0 {
		n = 0
	}
	if n > len(runes) {
		n = len(runes)
	}
	prefix := string(runes[:n])
	out, diags := TruncateGarbageTail(prefix)
	if out == text {
		return text, nil
	}
	return out, append([]string{"truncated at parser error offset " + itoa(n)}, diags...)
}
