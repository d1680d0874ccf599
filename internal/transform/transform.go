// Package transform implements the text-level repair catalogue T1-T20.
// Every transform is a pure function of its input text; none touches a
// file, a clock, or the network. Most consult internal/scanner to stay
// outside JSON string literals; a few (T12, T13/T14's mirror) walk the
// text themselves because they need the scanner's inString/escapeNext
// state machine directly rather than just its ranges.
package transform

import "jsonmend/internal/scanner"

// Descriptor names one catalogue entry and its pure text->text function.
// The driver iterates a slice of these rather than calling T1..T20 by
// name, so adding a transform or re-ordering the catalogue never touches
// driver control flow — only the slice literal that builds the pipeline.
type Descriptor struct {
	Name  string
	Apply func(text string) (string, []string)
}

// PrePassCatalogue runs once, before the first main pass: T20 so a
// Python-dict's quotes are normalized before T4 ever sees its keys, then
// the three structural transforms (T9-T11) that need to see raw,
// unrepaired punctuation to recognize their patterns reliably.
var PrePassCatalogue = []Descriptor{
	{"normalize_python_quotes", NormalizePythonQuotes},
	{"wrap_bare_kv", WrapBareKV},
	{"promote_stringified_value", PromoteStringifiedValue},
	{"remove_stray_quotes_after_numbers", RemoveStrayQuotesAfterNumbers},
}

// MainPassCatalogue is replayed at the top of every main pass. Order
// follows SPEC_FULL.md's driver orchestration: the structural
// normalizers (T9-T11, T20) first, then comment/literal/key cleanup,
// duplicate-key collapse, comma repair, then string/bracket closing.
// "balance_brackets" runs T13 and falls back to T14 only when T13 left
// the text unchanged; "insert_misplaced_bracket" runs T15 and follows it
// with T16's cleanup only when T15 actually fired, per spec.
var MainPassCatalogue = []Descriptor{
	{"wrap_bare_kv", WrapBareKV},
	{"promote_stringified_value", PromoteStringifiedValue},
	{"remove_stray_quotes_after_numbers", RemoveStrayQuotesAfterNumbers},
	{"normalize_python_quotes", NormalizePythonQuotes},
	{"strip_comments", StripComments},
	{"normalize_literals", NormalizeLiterals},
	{"quote_keys", QuoteKeys},
	{"collapse_duplicate_keys", CollapseDuplicateKeys},
	{"fill_missing_values", FillMissingValues},
	{"insert_missing_commas", InsertMissingCommas},
	{"remove_trailing_commas", RemoveTrailingCommas},
	{"close_unclosed_strings", CloseUnclosedStrings},
	{"balance_brackets", BalanceBrackets},
	{"insert_misplaced_bracket", InsertMisplacedBracketAndClean},
}

// stringStrippedMirror returns a same-length copy of text in which every
// byte inside a string literal (but not its surrounding quotes) is
// replaced with a space, so structural analyzers see only punctuation.
func stringStrippedMirror(text string) string {
	ranges := scanner.StringRanges(text)
	out := []byte(text)
	for _, r := range ranges {
		end := r.End - 1 // keep the closing quote
		if end == r.Start || out[end] != '"' {
			end = r.End // unterminated literal: no closing quote to keep
		}
		for i := r.Start + 1; i < end && i < len(out); i++ {
			out[i] = ' '
		}
	}
	return string(out)
}

func isDigitOrSign(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
