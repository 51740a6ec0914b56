package content

import "testing"

func TestParseSection(t *testing.T) {
	raw := `---
name: principles
title: Principles
---
- Keep it small.
- Keep it tested.`

	sec, err := parseSection(raw)
	if err != nil {
		t.Fatalf("parseSection() error = %v", err)
	}
	if sec.Name != "principles" {
		t.Errorf("Name = %q", sec.Name)
	}
	if sec.Title != "Principles" {
		t.Errorf("Title = %q", sec.Title)
	}
	if sec.Body != "- Keep it small.\n- Keep it tested." {
		t.Errorf("Body = %q", sec.Body)
	}
}

func TestParseSectionNoFrontmatter(t *testing.T) {
	sec, err := parseSection("just a body")
	if err != nil {
		t.Fatalf("parseSection() error = %v", err)
	}
	if sec.Name != "" || sec.Title != "" {
		t.Errorf("expected empty metadata, got %+v", sec)
	}
	if sec.Body != "just a body" {
		t.Errorf("Body = %q", sec.Body)
	}
}

func TestParseSectionInvalidFrontmatter(t *testing.T) {
	raw := "---\nname: [unclosed\n---\nbody"
	if _, err := parseSection(raw); err == nil {
		t.Error("expected error for invalid frontmatter")
	}
}

func TestSplitFrontmatterUnterminated(t *testing.T) {
	raw := "---\nname: x\nno closing delimiter"
	frontmatter, body := splitFrontmatter(raw)
	if frontmatter != "" {
		t.Errorf("frontmatter = %q, want empty for unterminated block", frontmatter)
	}
	if body != raw {
		t.Errorf("body should be the raw input, got %q", body)
	}
}
