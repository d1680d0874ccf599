package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileGeneratesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonmend.yaml")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.MaxPasses != Default.MaxPasses {
		t.Errorf("MaxPasses = %d, want %d", cfg.MaxPasses, Default.MaxPasses)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile() on generated file error: %v", err)
	}
}

func TestLoadFileRejectsInvalidMaxPasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonmend.yaml")
	writeFile(t, path, "max_passes: 0\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected an error for max_passes: 0")
	}
}

func TestLoadFileRejectsScriptEnabledWithoutFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonmend.yaml")
	writeFile(t, path, "max_passes: 6\nscript:\n  enabled: true\n  timeout: 2\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected an error for script.enabled without script.files")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}
