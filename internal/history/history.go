// Package history is an opt-in persistence layer for repair invocations.
// Repair itself never touches this package — it has no filesystem
// access and no clock. A caller that wants an audit trail opens a Store
// and records each Result explicitly, the same way an embedding
// application owns its own logging destination.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Record is one persisted repair invocation. InputHash rather than the
// raw input is stored by default so a history database doesn't become a
// second copy of every payload the caller ever repaired; a caller that
// wants the literal text can set Entry.InputText.
type Record struct {
	ID          uint   `gorm:"primaryKey"`
	Sequence    uint64 `gorm:"autoIncrement:false;index"`
	InputHash   string `gorm:"size:64;index"`
	InputText   string
	Outcome     string `gorm:"size:16"` // "parsed" | "unresolved"
	Canonical   string
	Error       string
	Diagnostics string
	RecordedAt  time.Time
}

func (Record) TableName() string { return "repair_records" }

// Store is a GORM-backed sqlite database of Records.
type Store struct {
	db   *gorm.DB
	seq  uint64
}

// Open creates the database directory if needed and opens (or migrates)
// a sqlite database at dir/history.db, using the pure-Go
// modernc.org/sqlite driver so the binary stays cgo-free.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("history: create directory: %w", err)
	}
	dbPath := filepath.Join(dir, "history.db")

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dbPath + "?_journal_mode=WAL&_timeout=5000&_busy_timeout=5000",
	}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("history: migrate: %w", err)
	}

	var maxSeq uint64
	db.Model(&Record{}).Select("COALESCE(MAX(sequence), 0)").Scan(&maxSeq)

	return &Store{db: db, seq: maxSeq}, nil
}

// Entry is the caller-facing shape of one invocation to persist; it
// mirrors jsonmend.Result without importing the root package, so history
// has no dependency on the pure core and vice versa.
type Entry struct {
	InputHash   string
	InputText   string
	Parsed      bool
	Canonical   string
	Err         string
	Diagnostics []string
}

// Save appends one Entry, assigning it the next monotonic sequence
// number. InputText is empty unless the caller chose to populate it.
func (s *Store) Save(e Entry) error {
	s.seq++
	outcome := "unresolved"
	if e.Parsed {
		outcome = "parsed"
	}
	rec := Record{
		Sequence:    s.seq,
		InputHash:   e.InputHash,
		InputText:   e.InputText,
		Outcome:     outcome,
		Canonical:   e.Canonical,
		Error:       e.Err,
		Diagnostics: joinDiagnostics(e.Diagnostics),
		RecordedAt:  time.Now().UTC(),
	}
	return s.db.Create(&rec).Error
}

// Recent returns the most recently recorded entries, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	var records []Record
	err := s.db.Order("sequence DESC").Limit(limit).Find(&records).Error
	return records, err
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func joinDiagnostics(diags []string) string {
	out := ""
	for i, d := range diags {
		if i > 0 {
			out += "\n"
		}
		out += d
	}
	return out
}
