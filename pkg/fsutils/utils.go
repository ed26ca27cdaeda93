package fsutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var osGetwd = os.Getwd
var filepathEvalSymlinks = filepath.EvalSymlinks

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// Canonicalize returns an absolute, symlink free and clean form of p.
// An empty p means the current working directory.
func Canonicalize(p string) (string, error) {
	p = ExpandHome(p)
	if p == "" || !filepath.IsAbs(p) {
		wd, err := osGetwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		p = filepath.Join(wd, p)
	}
	resolved, err := filepathEvalSymlinks(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	return filepath.Clean(resolved), nil
}

// IsRoot reports whether p is a filesystem root ("/" or a volume root).
func IsRoot(p string) bool {
	p = filepath.Clean(p)
	return filepath.Dir(p) == p
}

// Parent returns the directory containing p and false when p is a root.
func Parent(p string) (string, bool) {
	if IsRoot(p) {
		return "", false
	}
	return filepath.Dir(filepath.Clean(p)), true
}
