package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nxhuman/nxhuman/internal/content"
	"github.com/nxhuman/nxhuman/internal/logbook"
	"github.com/nxhuman/nxhuman/internal/output"
)

// newLogCmd creates the log command.
func newLogCmd() *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "log <text>",
		Short: "Append a decision to the .nxlogs log",
		Long: `Append a decision entry to the .nxlogs log in the current directory.

The log is append-only: entries are added at the end of the file and prior
lines are never modified. The log must already exist; run 'nxhuman' first
to seed it.

Examples:
  nxhuman log "use postgres for billing"
  nxhuman log --kind CONVENTION "handlers live under internal/handler"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, args, kindFlag)
		},
	}
	cmd.Flags().StringVar(&kindFlag, "kind", "", "Entry kind label (default DECISION)")
	return cmd
}

// runLog executes the log command.
func runLog(cmd *cobra.Command, args []string, kind string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		err := output.NewError("decision text must not be empty")
		printer.Error(err)
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		wrapped := output.NewErrorWithCause("could not determine working directory", err)
		printer.Error(wrapped)
		return wrapped
	}

	log := logbook.New(filepath.Join(cwd, content.LogFile))
	entry := logbook.Entry{At: time.Now(), Kind: kind, Text: text}
	if err := log.Append(entry); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": "Decision recorded",
		"line":    entry.Line(),
		"path":    log.Path(),
	})
}
