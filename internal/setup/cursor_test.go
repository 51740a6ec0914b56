package setup

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nxhuman/nxhuman/internal/content"
)

func TestInstallAlias(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	dir := t.TempDir()
	rulesPath := filepath.Join(dir, content.RulesFile)
	if err := os.WriteFile(rulesPath, []byte("rules body\n"), 0o644); err != nil {
		t.Fatalf("seeding rules file: %v", err)
	}

	if AliasInstalled(dir) {
		t.Fatal("alias should not be installed yet")
	}

	if err := InstallAlias(dir); err != nil {
		t.Fatalf("InstallAlias() error = %v", err)
	}

	if !AliasInstalled(dir) {
		t.Error("alias should be installed")
	}

	// The alias resolves to the rules content.
	data, err := os.ReadFile(filepath.Join(dir, content.AliasFile))
	if err != nil {
		t.Fatalf("reading through alias: %v", err)
	}
	if string(data) != "rules body\n" {
		t.Errorf("alias content = %q", data)
	}

	// And the link target is relative.
	target, err := os.Readlink(filepath.Join(dir, content.AliasFile))
	if err != nil {
		t.Fatalf("readlink: %v", err)
	}
	if target != content.RulesFile {
		t.Errorf("link target = %q, want %q", target, content.RulesFile)
	}
}

func TestInstallAliasFailsWhenPresent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	dir := t.TempDir()
	aliasPath := filepath.Join(dir, content.AliasFile)
	if err := os.WriteFile(aliasPath, []byte("existing\n"), 0o644); err != nil {
		t.Fatalf("seeding alias: %v", err)
	}

	if err := InstallAlias(dir); err == nil {
		t.Error("expected error when alias already exists")
	}

	data, _ := os.ReadFile(aliasPath)
	if string(data) != "existing\n" {
		t.Errorf("existing alias content changed: %q", data)
	}
}

func TestAliasInstalledDanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	dir := t.TempDir()
	// Link to a target that does not exist.
	if err := os.Symlink(content.RulesFile, filepath.Join(dir, content.AliasFile)); err != nil {
		t.Fatalf("creating dangling symlink: %v", err)
	}

	if !AliasInstalled(dir) {
		t.Error("dangling symlink should still count as installed")
	}
}

func TestFallbackInstruction(t *testing.T) {
	msg := FallbackInstruction()
	if msg == "" {
		t.Fatal("fallback instruction should not be empty")
	}
	for _, want := range []string{content.RulesFile, content.AliasFile} {
		if !strings.Contains(msg, want) {
			t.Errorf("fallback instruction missing %q: %q", want, msg)
		}
	}
}
