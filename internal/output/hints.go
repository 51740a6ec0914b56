package output

import (
	"errors"
	"os"
	"syscall"
)

// Hint maps a filesystem error to a short human-readable hint.
// Recognized categories: permission denied, insufficient space, invalid path.
// Returns an empty string for nil or unrecognized errors.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, os.ErrPermission):
		return "check write permissions for the target directory"
	case errors.Is(err, syscall.ENOSPC):
		return "the filesystem is out of space"
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.EINVAL), errors.Is(err, syscall.ENAMETOOLONG):
		return "the target path is not valid"
	default:
		return ""
	}
}
