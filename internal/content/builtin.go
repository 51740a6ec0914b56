package content

import (
	"embed"
	"fmt"
)

//go:embed sections/*.md
var sectionFS embed.FS

// sectionOrder fixes the assembly order of the rules document.
// Changing the order changes the generated file, so this list is the
// single source of truth for document layout.
var sectionOrder = []string{
	"principles",
	"engineering-loop",
	"quality-standards",
	"development-flow",
	"specialists",
	"architecture",
	"workflow",
	"decision-framework",
	"project-context",
	"unknowns",
	"stack",
}

// loadSection loads a built-in section by name.
func loadSection(name string) (*Section, error) {
	path := "sections/" + name + ".md"
	data, err := sectionFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin section %s: %w", path, err)
	}
	return parseSection(string(data))
}
