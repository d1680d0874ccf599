package history

import "testing"

func TestOpenSaveAndRecent(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	if err := store.Save(Entry{InputHash: "abc123", Parsed: true, Canonical: `{"a":1}`}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Save(Entry{InputHash: "def456", Parsed: false, Err: "Expecting value: line 1 column 1 (char 0)"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].InputHash != "def456" {
		t.Errorf("Recent()[0].InputHash = %q, want the most recently saved entry first", records[0].InputHash)
	}
}

func TestOpenReopensExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := store.Save(Entry{InputHash: "x", Parsed: true}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	store.Close()

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen Open() error: %v", err)
	}
	defer reopened.Close()

	if err := reopened.Save(Entry{InputHash: "y", Parsed: true}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	records, err := reopened.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 across reopen", len(records))
	}
	if records[0].Sequence != 2 {
		t.Errorf("Sequence did not continue monotonically across reopen: got %d, want 2", records[0].Sequence)
	}
}
