package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rule.star")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadCallsRepairFunction(t *testing.T) {
	path := writeScript(t, "def repair(text):\n    return text.replace('NaN', 'null')\n")
	transform, err := Load(path, time.Second)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got, diags := transform(`{"x": NaN}`)
	if got != `{"x": null}` {
		t.Errorf("got %q, want %q", got, `{"x": null}`)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestLoadCallsRepairFunctionReturningDiagnostics(t *testing.T) {
	path := writeScript(t, "def repair(text):\n    return text.replace('NaN', 'null'), ['replaced NaN with null']\n")
	transform, err := Load(path, time.Second)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got, diags := transform(`{"x": NaN}`)
	if got != `{"x": null}` {
		t.Errorf("got %q, want %q", got, `{"x": null}`)
	}
	if len(diags) != 1 || diags[0] != "replaced NaN with null" {
		t.Errorf("diags = %v, want [replaced NaN with null]", diags)
	}
}

func TestLoadRejectsScriptWithoutEntryPoint(t *testing.T) {
	path := writeScript(t, "def other(text):\n    return text\n")
	if _, err := Load(path, time.Second); err == nil {
		t.Error("expected an error for a script missing repair()")
	}
}

func TestLoadRejectsScriptWithSyntaxError(t *testing.T) {
	path := writeScript(t, "def repair(text:\n    return text\n")
	if _, err := Load(path, time.Second); err == nil {
		t.Error("expected an error for a script with a syntax error")
	}
}

func TestTransformReturnsOriginalTextOnRuntimeError(t *testing.T) {
	path := writeScript(t, "def repair(text):\n    return 1 / 0\n")
	transform, err := Load(path, time.Second)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got, diags := transform("abc")
	if got != "abc" {
		t.Errorf("got %q, want original text unchanged", got)
	}
	if len(diags) != 1 || !strings.Contains(diags[0], "failed") {
		t.Errorf("expected a failure diagnostic, got %v", diags)
	}
}

func TestTransformCancelsOnTimeout(t *testing.T) {
	path := writeScript(t, "def repair(text):\n    x = 0\n    for i in range(100000000):\n        x += i\n    return text\n")
	transform, err := Load(path, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got, diags := transform("abc")
	if got != "abc" {
		t.Errorf("got %q, want original text unchanged after cancellation", got)
	}
	if len(diags) != 1 {
		t.Errorf("expected a cancellation diagnostic, got %v", diags)
	}
}
