package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section is one named block of the rules document.
type Section struct {
	// Metadata from frontmatter
	Name  string `yaml:"name"`
	Title string `yaml:"title"`

	// Section body (after frontmatter)
	Body string `yaml:"-"`
}

// parseSection parses a section from raw content with YAML frontmatter.
func parseSection(raw string) (*Section, error) {
	frontmatter, body := splitFrontmatter(raw)

	var sec Section
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &sec); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	sec.Body = strings.TrimSpace(body)
	return &sec, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, body string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:] // skip opening ---
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
