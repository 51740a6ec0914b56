package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nxhuman/nxhuman/internal/content"
	"github.com/nxhuman/nxhuman/internal/fswrite"
	"github.com/nxhuman/nxhuman/internal/logbook"
	"github.com/nxhuman/nxhuman/internal/output"
	"github.com/nxhuman/nxhuman/internal/setup"
)

// statusResult holds the data for status output.
type statusResult struct {
	Project     string `json:"project"`
	Dir         string `json:"dir"`
	RulesExists bool   `json:"rules_exists"`
	LogExists   bool   `json:"log_exists"`
	AliasExists bool   `json:"alias_exists"`
	Decisions   int    `json:"decisions"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which context files exist in this directory",
		Long: `Show the state of nxhuman context files in the current directory.

Reports whether .rules, .nxlogs, and the .cursorrules alias are present,
and how many decisions are recorded in the log.

Examples:
  nxhuman status          # Human-readable status
  nxhuman status --json   # Output status as JSON for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd)
		},
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	cwd, err := os.Getwd()
	if err != nil {
		wrapped := output.NewErrorWithCause("could not determine working directory", err)
		printer.Error(wrapped)
		return wrapped
	}

	log := logbook.New(filepath.Join(cwd, content.LogFile))
	decisions, err := log.Count()
	if err != nil {
		printer.Error(err)
		return err
	}

	result := statusResult{
		Project:     filepath.Base(cwd),
		Dir:         cwd,
		RulesExists: fswrite.Exists(filepath.Join(cwd, content.RulesFile)),
		LogExists:   log.Exists(),
		AliasExists: setup.AliasInstalled(cwd),
		Decisions:   decisions,
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("Project", result.Project)
	printer.KeyValue(content.RulesFile, presence(result.RulesExists))
	printer.KeyValue(content.LogFile, presence(result.LogExists))
	printer.KeyValue(content.AliasFile, presence(result.AliasExists))
	printer.KeyValue("Decisions", strconv.Itoa(result.Decisions))

	if !result.RulesExists {
		printer.Println()
		printer.Println("Run 'nxhuman' to generate the context files.")
	}
	return nil
}

// presence renders an existence flag for human output.
func presence(exists bool) string {
	if exists {
		return "present"
	}
	return "missing"
}
