// Package content assembles the generated text bodies for the nxhuman
// context files. Generation is a pure function of the project name and a
// timestamp; all section text is static and embedded in the binary.
package content

import (
	"fmt"
	"strings"
	"time"
)

// Generated file names, relative to the invocation directory.
const (
	RulesFile = ".rules"
	LogFile   = ".nxlogs"
	AliasFile = ".cursorrules"
)

// LogHeader is the first line of every decision log.
const LogHeader = "# nxHuman Decision Log"

// logTrailer marks where future entries are appended.
const logTrailer = "# -- append new decisions below --"

// Params holds the runtime substitutions for content generation.
type Params struct {
	Project string
	Now     time.Time
}

// vars builds the substitution map shared by all templates.
func (p Params) vars() map[string]string {
	return map[string]string{
		"project":   p.Project,
		"timestamp": p.Now.UTC().Format(time.RFC3339),
	}
}

// render substitutes {{key}} placeholders in raw with values from vars.
func render(raw string, vars map[string]string) string {
	result := raw
	for key, val := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", val)
	}
	return result
}

// Rules assembles the full rules document body.
// Sections are concatenated in the fixed order defined by sectionOrder,
// each under its frontmatter title.
func Rules(params Params) (string, error) {
	vars := params.vars()

	var b strings.Builder
	b.WriteString("# nxHuman Context Rules\n")
	b.WriteString("# Generated for AI-assisted IDEs. Re-run nxhuman --force to regenerate.\n")

	for _, name := range sectionOrder {
		sec, err := loadSection(name)
		if err != nil {
			return "", fmt.Errorf("assembling rules: %w", err)
		}
		b.WriteString("\n## ")
		b.WriteString(sec.Title)
		b.WriteString("\n\n")
		b.WriteString(render(sec.Body, vars))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// LogSeed produces the initial decision log body: a header block, the two
// seed entries, and the trailer comment marking the append point.
func LogSeed(params Params) string {
	vars := params.vars()
	timestamp := vars["timestamp"]

	var b strings.Builder
	b.WriteString(LogHeader + "\n")
	b.WriteString("# Project: " + params.Project + "\n")
	b.WriteString("# Created: " + timestamp + "\n")
	b.WriteString("\n")
	b.WriteString("[" + timestamp + "] INIT: nxHuman context initialized\n")
	b.WriteString("[" + timestamp + "] PROJECT: identified as " + params.Project + "\n")
	b.WriteString("\n")
	b.WriteString(logTrailer + "\n")

	return b.String()
}
