package transform

import (
	"strings"

	"jsonmend/internal/jsonstrict"
)

// InsertMisplacedBracket is T15: a line-oriented pass looking for a line
// ending in a single `]` whose preceding token looks like the end of an
// object value (a closing quote, a closing brace, a true/false/null
// literal, or a digit) rather than an array element, at a point where both an object
// and an array are structurally still open. The likely defect is a
// missing `}` that the author's `]` was meant to follow. At most one
// insertion is made per call — the driver re-evaluates from scratch on
// the next pass, since one insertion can change what every later line
// looks like.
func InsertMisplacedBracket(text string) (string, []string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmedRight := strings.TrimRight(line, " \t")
		if !strings.HasSuffix(trimmedRight, "]") || strings.HasSuffix(trimmedRight, "]]") {
			continue
		}
		sameLineBefore := strings.TrimRight(trimmedRight[:len(trimmedRight)-1], " \t")
		prefix := strings.Join(lines[:i], "\n")
		if i > 0 {
			prefix += "\n"
		}
		prefix += sameLineBefore

		precedingToken := strings.TrimRight(prefix, " \t\n")
		if precedingToken == "" || !looksLikeValueTerminator(precedingToken) {
			continue
		}
		if !bothLevelsOpen(prefix) {
			continue
		}

		indent := leadingWhitespace(line) + "  "
		bracketCol := strings.LastIndex(line, "]")
		rebuilt := line[:bracketCol] + "\n" + indent + "}" + "\n" + leadingWhitespace(line) + line[bracketCol:]
		newLines := append(append(append([]string{}, lines[:i]...), rebuilt), lines[i+1:]...)
		return strings.Join(newLines, "\n"), []string{"inserted misplaced } before line " + itoa(i+1) + "'s ]"}
	}
	return text, nil
}

func looksLikeValueTerminator(s string) bool {
	last := s[len(s)-1]
	switch last {
	case '"', '}':
		return true
	}
	if strings.HasSuffix(s, "true") || strings.HasSuffix(s, "false") || strings.HasSuffix(s, "null") {
		return true
	}
	return last >= '0' && last <= '9'
}

func bothLevelsOpen(prefix string) bool {
	mirror := stringStrippedMirror(prefix)
	objDepth, arrDepth := 0, 0
	for i := 0; i < len(mirror); i++ {
		switch mirror[i] {
		case '{':
			objDepth++
		case '}':
			objDepth--
		case '[':
			arrDepth++
		case ']':
			arrDepth--
		}
	}
	return objDepth > 0 && arrDepth > 0
}

func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// CleanExtraBrackets is T16: run only after T15 has fired. Strips
// trailing }/] characters one at a time, and after each strip checks
// whether the text now strictly parses; the first such prefix is accepted.
// If no prefix parses, the text is returned unchanged.
func CleanExtraBrackets(text string) (string, []string) {
	trimmed := strings.TrimRight(text, " \t\n\r")
	candidate := trimmed
	for len(candidate) > 0 {
		last := candidate[len(candidate)-1]
		if last != '}' && last != ']' {
			break
		}
		next := candidate[:len(candidate)-1]
		if _, err := jsonstrict.Parse(next); err == nil {
			return next, []string{"stripped extra trailing bracket(s)"}
		}
		candidate = next
	}
	return text, nil
}

// InsertMisplacedBracketAndClean is the driver-facing combination of T15
// and its T16 cleanup: this wrapper calls CleanExtraBrackets only when
// InsertMisplacedBracket actually changed the text, rather than on every
// main pass regardless.
func InsertMisplacedBracketAndClean(text string) (string, []string) {
	out, diags := InsertMisplacedBracket(text)
	if out == text {
		return text, nil
	}
	cleaned, cleanDiags := CleanExtraBrackets(out)
	return cleaned, append(diags, cleanDiags...)
}
