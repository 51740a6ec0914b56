// Package main provides the entry point for the nxhuman CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nxhuman/nxhuman/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the nxhuman CLI.
// Running it with no subcommand generates the context files in the
// current working directory.
func newRootCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "nxhuman",
		Short: "Seed a project with AI-IDE context files",
		Long: `nxhuman writes an opinionated context file for AI-assisted IDEs into the
current working directory, plus an append-only decision log.

Files produced:
  .rules        the generated context document (regenerated in full on write)
  .nxlogs       the decision log (created once, then append-only)
  .cursorrules  optional alias for .rules, created on confirmation

Existing files are never overwritten unless --force is given, and the
decision log is never overwritten at all. Use --dry-run to see what would
happen without touching the filesystem.

Examples:
  nxhuman               # Generate context files, prompt for the alias
  nxhuman --force       # Regenerate .rules even if it exists
  nxhuman --dry-run     # Simulate, no writes, no prompt
  nxhuman --yes         # Create the .cursorrules alias without asking`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing .rules file")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Simulate writes without mutating the filesystem")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Create the .cursorrules alias without prompting")
	cmd.Flags().BoolVar(&flags.noAlias, "no-alias", false, "Skip the .cursorrules alias step")

	// Persistent --json flag (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newLogCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
