package scanner

import "regexp"

// SubstituteOutsideStrings rewrites only those regexp matches whose
// starting offset lies outside all string ranges, leaving matches that
// start inside a string literal untouched. repl receives the submatch
// slice (index 0 is the whole match) and returns its replacement text.
// String ranges are recomputed fresh against text; correctness never
// depends on a caller-supplied cache.
func SubstituteOutsideStrings(text string, re *regexp.Regexp, repl func(groups []string) string) string {
	ranges := StringRanges(text)

	var out []byte
	last := 0
	for pos := 0; pos <= len(text); {
		m := re.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		start, end := m[0]+pos, m[1]+pos
		if !IsOutsideStrings(start, ranges) {
			// A match starting inside a literal can run past its closing
			// quote; search again from the next byte so a match that
			// starts outside the literal further on is still found.
			pos = start + 1
			continue
		}
		groups := make([]string, len(m)/2)
		for i := range groups {
			gs, ge := m[2*i], m[2*i+1]
			if gs < 0 {
				continue
			}
			groups[i] = text[gs+pos : ge+pos]
		}
		out = append(out, text[last:start]...)
		out = append(out, repl(groups)...)
		last = end
		pos = end
		if end == start {
			pos++
		}
	}
	out = append(out, text[last:]...)
	return string(out)
}
