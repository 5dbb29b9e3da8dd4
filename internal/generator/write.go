package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CheckOverwrite fails with a *ConflictError when path exists and force is
// false. It runs before any template work.
func CheckOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return &ConflictError{Path: path}
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to stat %s: %w", path, err)
}

// Write creates or replaces path with content. When path is a symlink the
// file it points to is written and the link is left in place.
func Write(path, content string) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	return writeFile(target, content)
}

// resolveTarget follows symlinks at path. A dangling link resolves to the
// file it names so the write creates it.
func resolveTarget(path string) (string, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return path, nil
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to resolve symlink %s: %w", path, err)
	}

	dest, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("failed to read symlink %s: %w", path, err)
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	return dest, nil
}
