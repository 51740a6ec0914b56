package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const seedContent = `# nxHuman Decision Log
# Project: demo-app
# Created: 2026-03-14T09:26:53Z

[2026-03-14T09:26:53Z] INIT: nxHuman context initialized
[2026-03-14T09:26:53Z] PROJECT: identified as demo-app

# -- append new decisions below --
`

func seedLog(t *testing.T) *Logbook {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".nxlogs")
	if err := os.WriteFile(path, []byte(seedContent), 0o644); err != nil {
		t.Fatalf("seeding log: %v", err)
	}
	return New(path)
}

func TestEntryLine(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "explicit kind",
			entry: Entry{At: at, Kind: "INIT", Text: "nxHuman context initialized"},
			want:  "[2026-03-14T09:30:00Z] INIT: nxHuman context initialized",
		},
		{
			name:  "default kind",
			entry: Entry{At: at, Text: "use postgres for billing"},
			want:  "[2026-03-14T09:30:00Z] DECISION: use postgres for billing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendLeavesPriorBytesUnchanged(t *testing.T) {
	log := seedLog(t)

	entry := Entry{At: time.Now(), Text: "use postgres for billing"}
	if err := log.Append(entry); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := os.ReadFile(log.Path())
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	if !strings.HasPrefix(string(data), seedContent) {
		t.Error("append modified existing content")
	}
	if !strings.HasSuffix(string(data), "DECISION: use postgres for billing\n") {
		t.Errorf("appended line missing or malformed: %q", data)
	}
}

func TestAppendRequiresExistingLog(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), ".nxlogs"))

	err := log.Append(Entry{At: time.Now(), Text: "orphan"})
	if err == nil {
		t.Fatal("expected error for missing log file")
	}
	if log.Exists() {
		t.Error("failed append must not create the file")
	}
}

func TestCount(t *testing.T) {
	log := seedLog(t)

	count, err := log.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2 seed entries", count)
	}

	if err := log.Append(Entry{At: time.Now(), Text: "another"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	count, err = log.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3 after append", count)
	}
}

func TestCountMissingFile(t *testing.T) {
	log := New(filepath.Join(t.TempDir(), ".nxlogs"))

	count, err := log.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0 for missing file", count)
	}
}
