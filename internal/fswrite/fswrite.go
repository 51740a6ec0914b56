// Package fswrite implements the guarded write policy for generated files.
//
// Every generated file goes through Write, which decides between creating,
// skipping, or simulating based on the target's existence and the force and
// dry-run flags. Skipping an existing file is the protective default, not an
// error.
package fswrite

import (
	"fmt"
	"os"
	"path/filepath"
)

// Outcome is the result of a guarded write decision.
type Outcome string

const (
	// Create means the file was written (or overwritten under force).
	Create Outcome = "create"
	// SkipExists means the target already existed and force was not set;
	// nothing was touched.
	SkipExists Outcome = "skip_exists"
	// Simulate means dry-run mode; nothing was touched.
	Simulate Outcome = "simulate"
)

// Options control the write decision.
type Options struct {
	// Force permits overwriting an existing target.
	Force bool
	// DryRun suppresses all filesystem mutation.
	DryRun bool
}

// Write applies the guarded write policy to path.
//
// Decision order:
//   - dry-run: no mutation, Simulate
//   - target exists and force is false: no mutation, SkipExists
//   - otherwise: create parent directories, write the full content, Create
//
// The content is written in a single WriteFile call; no temp file is used
// since the content is small and the targets are independent.
// OS errors are returned wrapped with the failing path.
func Write(path string, content string, opts Options) (Outcome, error) {
	if opts.DryRun {
		return Simulate, nil
	}

	if Exists(path) && !opts.Force {
		return SkipExists, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return Create, nil
}

// Exists reports whether a file or directory is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
