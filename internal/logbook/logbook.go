// Package logbook reads and appends entries in the .nxlogs decision log.
//
// The log is append-only: after the seed block is written, this package only
// ever adds lines at the end of the file. Existing bytes are never rewritten
// or removed.
package logbook

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nxhuman/nxhuman/internal/output"
)

// Entry is a single decision log line.
type Entry struct {
	At   time.Time
	Kind string // e.g. "DECISION", "INIT", "PROJECT"
	Text string
}

// Line renders the entry in the log line format: [RFC3339] KIND: text
func (e Entry) Line() string {
	kind := e.Kind
	if kind == "" {
		kind = "DECISION"
	}
	return fmt.Sprintf("[%s] %s: %s", e.At.UTC().Format(time.RFC3339), kind, e.Text)
}

// Logbook provides access to a decision log file.
type Logbook struct {
	path string
}

// New creates a Logbook for the given file path.
func New(path string) *Logbook {
	return &Logbook{path: path}
}

// Path returns the log file path.
func (l *Logbook) Path() string {
	return l.path
}

// Exists reports whether the log file is present.
func (l *Logbook) Exists() bool {
	info, err := os.Stat(l.path)
	return err == nil && !info.IsDir()
}

// Append adds one entry line at the end of the log file.
// The log must already exist; run the generator first to seed it.
func (l *Logbook) Append(entry Entry) error {
	if !l.Exists() {
		return output.NewError(l.path + " not found; run nxhuman to create it first")
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return output.NewErrorWithCause("failed to open "+l.path, err)
	}
	defer file.Close() //nolint:errcheck // close error is surfaced by the write below

	if _, err := file.WriteString(entry.Line() + "\n"); err != nil {
		return output.NewErrorWithCause("failed to append to "+l.path, err)
	}

	return nil
}

// Count returns the number of entry lines in the log.
// Comment lines and blank lines are not entries.
func (l *Logbook) Count() (int, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, output.NewErrorWithCause("failed to read "+l.path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, output.NewErrorWithCause("failed to read "+l.path, err)
	}

	return count, nil
}
