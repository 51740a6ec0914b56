package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nxhuman/nxhuman/internal/content"
	"github.com/nxhuman/nxhuman/internal/output"
)

// generateStyleSet holds lipgloss styles for generation output.
type generateStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// generateStyles returns a TTY-aware style set.
func generateStyles(isTTY bool) generateStyleSet {
	if !isTTY {
		return generateStyleSet{}
	}
	return generateStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// generateHeading returns the heading line for the run mode.
func generateHeading(dryRun bool) string {
	if dryRun {
		return "Dry run: nxhuman in"
	}
	return "Seeding AI context for"
}

// printStepResult prints a single step result in human format.
func printStepResult(printer *output.Printer, styles generateStyleSet, step stepResult) {
	icon := styledStepIcon(styles, step.Status)
	name := formatStepName(step.Name)
	printer.Print("  %s %s", icon, name)
	if step.Message != "" {
		printer.Print(" %s", styles.dim.Render("("+step.Message+")"))
	}
	printer.Println()
}

// styledStepIcon returns a styled icon for a step status.
func styledStepIcon(styles generateStyleSet, status string) string {
	switch status {
	case "ok":
		return styles.pass.Render("ok")
	case "skipped":
		return styles.skip.Render("--")
	case "failed":
		return styles.fail.Render("XX")
	case "dry_run":
		return styles.accent.Render(">")
	default:
		return "??"
	}
}

// formatStepName converts internal step names to display names.
func formatStepName(name string) string {
	switch name {
	case "rules":
		return content.RulesFile
	case "log":
		return content.LogFile
	case "alias":
		return content.AliasFile
	default:
		return name
	}
}

// printNextSteps outputs the closing summary and hints.
func printNextSteps(printer *output.Printer, styles generateStyleSet, steps []stepResult) {
	printer.Println()
	printer.Print("%s\n", styles.heading.Render(styles.pass.Render("Context seeded!")))
	printer.Println()
	printer.Print("Next steps:\n")
	printer.Print("  1. %s\n", styles.dim.Render("Point your IDE at the context file:"))
	printer.Print("     %s\n", styles.accent.Render(content.RulesFile))
	printer.Println()
	printer.Print("  2. %s\n", styles.dim.Render("Record decisions as they happen:"))
	printer.Print("     %s\n", styles.accent.Render(`nxhuman log "what was decided and why"`))

	for _, step := range steps {
		if step.Name == "alias" && step.Status == "failed" {
			printer.Println()
			printer.Print("  %s %s\n", styles.fail.Render("Note:"), step.Message)
		}
	}
}
