// Package fsutil holds path helpers shared by the shell and its commands.
package fsutil

import (
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" or "~/" in path with home. "~user" forms
// are left alone.
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}

// TildeAbbr replaces a leading home directory with ~. Only whole path
// components match, so /home/al is not abbreviated under /home/alice.
func TildeAbbr(path, home string) string {
	home = strings.TrimSuffix(home, "/")
	if home == "" || path == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+"/"); ok {
		return "~/" + rest
	}
	return path
}
