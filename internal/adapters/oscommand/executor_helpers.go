package oscommand

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// lookPath searches for an executable named file in the directories of
// pathList. If file contains a slash, it is tried directly. Empty PATH
// elements are skipped rather than read as the current directory.
func lookPath(file, pathList string) (string, error) {
	if file == "" {
		return "", exec.ErrNotFound
	}
	if strings.Contains(file, "/") {
		if err := findExecutable(file); err != nil {
			return "", err
		}
		return file, nil
	}
	var firstErr error
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, file)
		err := findExecutable(path)
		if err == nil {
			return path, nil
		}
		if firstErr == nil && errorsIsPermission(err) {
			firstErr = err
		}
	}
	if firstErr != nil {
		return "", firstErr
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		if os.IsNotExist(err) {
			return exec.ErrNotFound
		}
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

func errorsIsPermission(err error) bool {
	return err == fs.ErrPermission || os.IsPermission(err)
}
