package prompt

import (
	"path/filepath"

	"github.com/AntonioJCosta/kzsh/internal/fsutil"
)

func baseName(path, home string) string {
	if path == "" {
		return ""
	}
	if fsutil.TildeAbbr(path, home) == "~" {
		return "~"
	}
	return filepath.Base(path)
}
