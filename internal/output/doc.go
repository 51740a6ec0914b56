// Package output provides structured output handling for the nxhuman CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and for automated agents.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Context files written"})
//	printer.Error(err)
//	printer.Warn(".rules already exists, skipping")
//
// # Exit codes and errors
//
// The tool uses two exit codes: 0 for success (including --help and
// --version) and 1 for any error during the write sequence. A skipped write
// because the target already exists is reported as a warning, never as an
// error.
//
// Errors created with NewErrorWithCause carry a short hint derived from the
// underlying OS error (permission denied, out of space, invalid path). The
// hint is printed below the error message in human mode. No error is retried;
// all operations are local single-shot file writes.
package output
