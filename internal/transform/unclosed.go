package transform

import "strings"

// CloseUnclosedStrings is T12: a single pass with the scanner's own
// inString/escapeNext state machine. Inside a string, a raw newline is
// escaped to the two-character sequence \n rather than left as a literal
// control character (which strict JSON rejects). At end of text, a
// dangling trailing backslash is dropped and, if a string was never
// closed, a single closing quote is appended.
//
// This is the one transform whose contract explicitly touches string
// interiors — every other transform in the catalogue treats bytes inside
// a surviving string literal as immutable.
func CloseUnclosedStrings(text string) (string, []string) {
	var out strings.Builder
	var diags []string
	inString := false
	escapeNext := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			if escapeNext {
				out.WriteByte('\\')
				out.WriteByte(c)
				escapeNext = false
				continue
			}
			if c == '\\' {
				escapeNext = true
				continue
			}
			if c == '"' {
				out.WriteByte(c)
				inString = false
				continue
			}
			if c == '\n' {
				out.WriteString(`\n`)
				diags = append(diags, "escaped raw newline inside unterminated string")
				continue
			}
			out.WriteByte(c)
			continue
		}
		if c == '"' {
			inString = true
		}
		out.WriteByte(c)
	}

	if escapeNext {
		diags = append(diags, "dropped dangling trailing backslash")
	}
	if inString {
		out.WriteByte('"')
		diags = append(diags, "appended closing quote for unterminated string")
	}

	return out.String(), diags
}
