package driver

import (
	"strings"
	"testing"
)

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "S1 unquoted key nested",
			in:   `{ "u": { name: "Z", "age": 25 } }`,
			want: "{\n  \"u\": {\n    \"name\": \"Z\",\n    \"age\": 25\n  }\n}",
		},
		{
			name: "S3 trailing comma and python literals",
			in:   `{ "on": True, "off": false, "vals": [1,2,], }`,
			want: "{\n  \"on\": true,\n  \"off\": false,\n  \"vals\": [\n    1,\n    2\n  ]\n}",
		},
		{
			name: "S4 duplicate key last wins",
			in:   `{ "v": 1, "v": 2 }`,
			want: "{\n  \"v\": 2\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(tt.in, DefaultMaxPasses)
			if !res.Parsed {
				t.Fatalf("expected parsed, got Unresolved: %s (diagnostics: %v)", res.Err, res.Diagnostics)
			}
			if res.Canonical != tt.want {
				t.Errorf("Canonical =\n%s\nwant\n%s", res.Canonical, tt.want)
			}
		})
	}
}

func TestRunMissingCommaBetweenArrayObjects(t *testing.T) {
	res := Run(`{ "a": [ {"x":1} {"x":2} ] }`, DefaultMaxPasses)
	if !res.Parsed {
		t.Fatalf("expected parsed, got Unresolved: %s", res.Err)
	}
	if !strings.Contains(res.Canonical, `"x": 1`) || !strings.Contains(res.Canonical, `"x": 2`) {
		t.Errorf("Canonical = %s", res.Canonical)
	}
}

func TestRunStringifiedValue(t *testing.T) {
	res := Run(`{ "status":"ok", "result":"{ "rows": 2 }" }`, DefaultMaxPasses)
	if !res.Parsed {
		t.Fatalf("expected parsed, got Unresolved: %s (diagnostics: %v)", res.Err, res.Diagnostics)
	}
	if !strings.Contains(res.Canonical, `"rows": 2`) {
		t.Errorf("Canonical = %s", res.Canonical)
	}
}

func TestRunEmptyTextIsUnresolved(t *testing.T) {
	res := Run("", DefaultMaxPasses)
	if res.Parsed {
		t.Error("expected Unresolved for empty text")
	}
}

func TestRunWhitespaceOnlyIsUnresolved(t *testing.T) {
	res := Run("   \n\t  ", DefaultMaxPasses)
	if res.Parsed {
		t.Error("expected Unresolved for whitespace-only text")
	}
}

func TestRunBareScalarIsUnresolved(t *testing.T) {
	res := Run("hello", DefaultMaxPasses)
	if res.Parsed {
		t.Error("expected Unresolved for a bare unquoted scalar, not { \"hello\": null }")
	}
}

func TestRunBareKVIsParsed(t *testing.T) {
	res := Run(`"key": "value"`, DefaultMaxPasses)
	if !res.Parsed {
		t.Fatalf("expected parsed, got Unresolved: %s", res.Err)
	}
	if res.Canonical != "{\n  \"key\": \"value\"\n}" {
		t.Errorf("Canonical = %s", res.Canonical)
	}
}

func TestRunPreservesCommentLikeStringContent(t *testing.T) {
	res := Run(`{"note": "// not a comment"}`, DefaultMaxPasses)
	if !res.Parsed {
		t.Fatalf("expected parsed, got Unresolved: %s", res.Err)
	}
	if !strings.Contains(res.Canonical, "// not a comment") {
		t.Errorf("Canonical = %s, want the literal comment-like text preserved", res.Canonical)
	}
}

func TestRunDirectlyValidInputProducesNoRepairDiagnostics(t *testing.T) {
	res := Run(`{"a": 1}`, DefaultMaxPasses)
	if !res.Parsed {
		t.Fatalf("expected parsed, got Unresolved: %s", res.Err)
	}
	for _, d := range res.Diagnostics {
		if strings.Contains(d, "Inserted") || strings.Contains(d, "Appended") || strings.Contains(d, "inserted") || strings.Contains(d, "appended") {
			t.Errorf("unexpected repair diagnostic on already-valid input: %q", d)
		}
	}
}

func TestRunRandomBinaryNoiseIsUnresolvedWithoutPanic(t *testing.T) {
	noise := string([]byte{0x00, 0xff, 0x13, 0x80, 0x45, '{', 0x01})
	res := Run(noise, DefaultMaxPasses)
	if res.Parsed {
		t.Error("expected Unresolved for binary noise")
	}
}

func TestRunUnbalancedClosingBraceAtStartIsUnresolved(t *testing.T) {
	res := Run(`} {"a": 1`, DefaultMaxPasses)
	if res.Parsed {
		t.Error("expected Unresolved for a leading unmatched }")
	}
}

func TestRunIdempotent(t *testing.T) {
	in := `{ "u": { name: "Z", "age": 25 }, "on": True, }`
	first := Run(in, DefaultMaxPasses)
	second := Run(first.Repaired, DefaultMaxPasses)
	if first.Repaired != second.Repaired {
		t.Errorf("not idempotent: first=%q second=%q", first.Repaired, second.Repaired)
	}
}
