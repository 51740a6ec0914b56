// Package setup installs the optional .cursorrules alias for downstream
// consumers that look for that file name instead of .rules.
package setup

import (
	"os"
	"path/filepath"

	"github.com/nxhuman/nxhuman/internal/content"
)

// AliasInstalled reports whether a .cursorrules alias is already present in
// dir. A dangling symlink still counts as installed; replacing it is the
// user's call, not ours.
func AliasInstalled(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, content.AliasFile))
	return err == nil
}

// InstallAlias creates a .cursorrules symlink pointing at .rules in dir.
// The link target is relative so the pair survives moving the directory.
func InstallAlias(dir string) error {
	return os.Symlink(content.RulesFile, filepath.Join(dir, content.AliasFile))
}

// FallbackInstruction is shown when symlink creation fails (e.g. an
// unsupported filesystem). The run still succeeds; the user can finish the
// step by hand.
func FallbackInstruction() string {
	return "could not create a symlink on this filesystem; copy the file instead: cp " +
		content.RulesFile + " " + content.AliasFile
}
