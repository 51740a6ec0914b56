package content

import (
	"strings"
	"testing"
	"time"
)

var testParams = Params{
	Project: "demo-app",
	Now:     time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
}

func TestRulesContainsProjectLine(t *testing.T) {
	rules, err := Rules(testParams)
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}

	if !strings.Contains(rules, "Project: demo-app") {
		t.Error("rules body missing 'Project: demo-app'")
	}
	if !strings.Contains(rules, "2026-03-14T09:26:53Z") {
		t.Error("rules body missing RFC3339 timestamp")
	}
	if strings.Contains(rules, "{{") {
		t.Errorf("rules body has unsubstituted placeholders")
	}
}

func TestRulesSectionOrder(t *testing.T) {
	rules, err := Rules(testParams)
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}

	titles := []string{
		"## Principles",
		"## Engineering Loop",
		"## Quality Standards",
		"## Development Flow",
		"## Specialists",
		"## Architectural Principles",
		"## Workflow Principles",
		"## Decision Framework",
		"## Project Context",
		"## Unknowns",
		"## Recommended Stack",
	}

	pos := -1
	for _, title := range titles {
		idx := strings.Index(rules, title)
		if idx < 0 {
			t.Errorf("rules body missing section %q", title)
			continue
		}
		if idx < pos {
			t.Errorf("section %q out of order", title)
		}
		pos = idx
	}
}

func TestRulesIsPure(t *testing.T) {
	first, err := Rules(testParams)
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	second, err := Rules(testParams)
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	if first != second {
		t.Error("Rules() is not deterministic for identical params")
	}
}

func TestLogSeed(t *testing.T) {
	seed := LogSeed(testParams)
	lines := strings.Split(seed, "\n")

	if lines[0] != LogHeader {
		t.Errorf("first line = %q, want %q", lines[0], LogHeader)
	}
	if !strings.Contains(seed, "# Project: demo-app") {
		t.Error("log seed missing project header line")
	}
	if !strings.Contains(seed, "# Created: 2026-03-14T09:26:53Z") {
		t.Error("log seed missing creation timestamp")
	}
	if !strings.Contains(seed, "INIT: nxHuman context initialized") {
		t.Error("log seed missing INIT entry")
	}
	if !strings.Contains(seed, "PROJECT: identified as demo-app") {
		t.Error("log seed missing PROJECT entry")
	}
	if !strings.HasSuffix(seed, logTrailer+"\n") {
		t.Errorf("log seed should end with the append trailer, got %q", seed)
	}
}

func TestAllSectionsLoad(t *testing.T) {
	for _, name := range sectionOrder {
		sec, err := loadSection(name)
		if err != nil {
			t.Errorf("loadSection(%q) error = %v", name, err)
			continue
		}
		if sec.Name != name {
			t.Errorf("section %q frontmatter name = %q", name, sec.Name)
		}
		if sec.Title == "" {
			t.Errorf("section %q has no title", name)
		}
		if sec.Body == "" {
			t.Errorf("section %q has no body", name)
		}
	}
}

func TestLoadSectionUnknown(t *testing.T) {
	if _, err := loadSection("no-such-section"); err == nil {
		t.Error("expected error for unknown section")
	}
}
