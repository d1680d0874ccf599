package jsonstrict

import (
	"strings"
	"testing"
)

func TestParseValid(t *testing.T) {
	tests := []string{
		`{}`,
		`[]`,
		`{"a": 1, "b": [1, 2, 3], "c": {"d": null}}`,
		`"hello"`,
		`123`,
		`-4.5e-3`,
		`true`,
		`false`,
		`null`,
		`{"emoji": "café ☕"}`,
	}
	for _, tt := range tests {
		if _, err := Parse(tt); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt, err)
		}
	}
}

func TestParseRejectsNonStrict(t *testing.T) {
	tests := []string{
		`{a: 1}`,             // unquoted key
		`{"a": 1,}`,          // trailing comma
		`[1, 2,]`,            // trailing comma
		`{"a": True}`,        // non-lowercase literal
		`// comment\n{}`,     // comment
		`{'a': 1}`,           // single-quoted key
		``,                   // empty
		`{"a": 1} extra`,     // trailing garbage
	}
	for _, tt := range tests {
		if _, err := Parse(tt); err == nil {
			t.Errorf("Parse(%q) expected error, got none", tt)
		}
	}
}

func TestParseErrorShape(t *testing.T) {
	_, err := Parse(`{"a": 1 "b": 2}`)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Expecting ',' delimiter") {
		t.Errorf("message = %q, want Expecting ',' delimiter", msg)
	}
	if !strings.Contains(msg, "(char ") {
		t.Errorf("message = %q, want a (char N) offset", msg)
	}
	if !strings.Contains(msg, "line ") || !strings.Contains(msg, "column ") {
		t.Errorf("message = %q, want a line/column pair", msg)
	}
}

func TestParseErrorLineColumn(t *testing.T) {
	input := "{\n  \"a\": 1\n  \"b\": 2\n}"
	_, err := Parse(input)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Line != 3 {
		t.Errorf("Line = %d, want 3", err.Line)
	}
}

func TestEncodeCanonical(t *testing.T) {
	v, err := Parse(`{"b": 1, "a": [1,2], "b": 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Encode(v)
	want := "{\n  \"b\": 2,\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeNonASCIILiteral(t *testing.T) {
	v, _ := Parse(`{"name": "北京"}`)
	got := Encode(v)
	if !strings.Contains(got, "北京") {
		t.Errorf("Encode() = %q, want literal non-ASCII text", got)
	}
	if strings.Contains(got, `\u`) {
		t.Errorf("Encode() = %q, should not escape BMP characters", got)
	}
}
