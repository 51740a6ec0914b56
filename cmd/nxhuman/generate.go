// Package main provides the entry point for the nxhuman CLI.
package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nxhuman/nxhuman/internal/content"
	"github.com/nxhuman/nxhuman/internal/fswrite"
	"github.com/nxhuman/nxhuman/internal/output"
	"github.com/nxhuman/nxhuman/internal/setup"
)

// generateFlags holds the command-line flags for the root command.
type generateFlags struct {
	force   bool
	dryRun  bool
	yes     bool
	noAlias bool
}

// stepResult tracks the result of a single generation step.
type stepResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "skipped", "failed", "dry_run"
	Message string `json:"message,omitempty"`
}

// runGenerate executes the root command: write .rules and .nxlogs, then
// offer the .cursorrules alias.
func runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())
	styles := generateStyles(printer.IsTTY())

	cwd, err := os.Getwd()
	if err != nil {
		wrapped := output.NewErrorWithCause("could not determine working directory", err)
		printer.Error(wrapped)
		return wrapped
	}

	params := content.Params{
		Project: filepath.Base(cwd),
		Now:     time.Now(),
	}

	rulesBody, err := content.Rules(params)
	if err != nil {
		wrapped := output.NewErrorWithCause("could not assemble rules content", err)
		printer.Error(wrapped)
		return wrapped
	}
	logBody := content.LogSeed(params)

	if !printer.IsJSON() {
		printer.Println()
		printer.Print("%s %s...\n", styles.heading.Render(generateHeading(flags.dryRun)), styles.dim.Render(params.Project))
		printer.Println()
	}

	writeOpts := fswrite.Options{Force: flags.force, DryRun: flags.dryRun}

	steps := make([]stepResult, 0, 3)

	step, err := performWrite("rules", filepath.Join(cwd, content.RulesFile), rulesBody, writeOpts)
	steps = append(steps, step)
	if err != nil {
		return failGenerate(printer, styles, step, err)
	}
	reportStep(printer, styles, step, flags)

	// The log is never force-overwritten; once created it is append-only.
	logOpts := fswrite.Options{Force: false, DryRun: flags.dryRun}
	step, err = performWrite("log", filepath.Join(cwd, content.LogFile), logBody, logOpts)
	steps = append(steps, step)
	if err != nil {
		return failGenerate(printer, styles, step, err)
	}
	reportStep(printer, styles, step, flags)

	step = performAlias(cmd, printer, cwd, flags)
	steps = append(steps, step)
	reportStep(printer, styles, step, flags)

	return outputGenerateResult(printer, styles, params.Project, flags, steps)
}

// performWrite runs one guarded file write and maps the outcome to a step result.
func performWrite(name, path, body string, opts fswrite.Options) (stepResult, error) {
	outcome, err := fswrite.Write(path, body, opts)
	if err != nil {
		wrapped := output.NewErrorWithCause("could not write "+filepath.Base(path), err)
		return stepResult{Name: name, Status: "failed", Message: wrapped.Message}, wrapped
	}

	switch outcome {
	case fswrite.Create:
		return stepResult{Name: name, Status: "ok", Message: "created"}, nil
	case fswrite.SkipExists:
		return stepResult{Name: name, Status: "skipped", Message: "already exists"}, nil
	default:
		return stepResult{Name: name, Status: "dry_run", Message: "would write " + filepath.Base(path)}, nil
	}
}

// performAlias runs the .cursorrules alias step.
// Symlink failure reports the fallback instruction; it never fails the run.
func performAlias(cmd *cobra.Command, printer *output.Printer, cwd string, flags *generateFlags) stepResult {
	switch {
	case flags.noAlias:
		return stepResult{Name: "alias", Status: "skipped", Message: "disabled via --no-alias"}
	case flags.dryRun:
		return stepResult{Name: "alias", Status: "dry_run", Message: "would offer " + content.AliasFile + " alias"}
	case setup.AliasInstalled(cwd):
		return stepResult{Name: "alias", Status: "skipped", Message: "already exists"}
	}

	if !flags.yes {
		if printer.IsJSON() || !output.IsTTY(cmd.OutOrStdout()) {
			return stepResult{Name: "alias", Status: "skipped", Message: "non-interactive mode"}
		}
		if !promptAlias(printer) {
			return stepResult{Name: "alias", Status: "skipped", Message: "user declined"}
		}
	}

	if err := setup.InstallAlias(cwd); err != nil {
		return stepResult{Name: "alias", Status: "failed", Message: setup.FallbackInstruction()}
	}

	return stepResult{Name: "alias", Status: "ok", Message: "symlinked to " + content.RulesFile}
}

// promptAlias asks the user whether to create the alias. Defaults to yes.
func promptAlias(printer *output.Printer) bool {
	printer.Println()
	printer.Print("Create %s alias for Cursor? [Y/n] ", content.AliasFile)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes"
}

// failGenerate reports a failed write step and returns its error.
func failGenerate(printer *output.Printer, styles generateStyleSet, step stepResult, err error) error {
	if !printer.IsJSON() {
		printStepResult(printer, styles, step)
	}
	printer.Error(err)
	return err
}

// reportStep prints a step in human mode and raises the skip warning for
// the rules file, so the invoker understands why nothing appeared.
func reportStep(printer *output.Printer, styles generateStyleSet, step stepResult, flags *generateFlags) {
	if printer.IsJSON() {
		return
	}
	printStepResult(printer, styles, step)
	if step.Name == "rules" && step.Status == "skipped" && !flags.dryRun {
		printer.Warn("%s already exists, skipping (use --force to overwrite)", content.RulesFile)
	}
}

// outputGenerateResult outputs the final result.
func outputGenerateResult(printer *output.Printer, styles generateStyleSet, project string, flags *generateFlags, steps []stepResult) error {
	if printer.IsJSON() {
		status := "ok"
		if flags.dryRun {
			status = "dry_run"
		}
		return printer.Success(map[string]any{
			"status":  status,
			"project": project,
			"steps":   steps,
		})
	}

	if !flags.dryRun {
		printNextSteps(printer, styles, steps)
	}
	return nil
}
