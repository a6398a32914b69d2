// Package adapter contains infrastructure adapters for the plate CLI.
package adapter

import (
	"io"
	"os"
	"path/filepath"

	m "plate.dev/pkg/plate/internal/model"
)

// TemplateFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when copying and rewriting template trees. It intentionally
// hides direct `os` access so the rewrite and workflow logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type TemplateFSAdapter interface {
	// ReadDir lists the entries of a single directory level.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// WriteFileAtomic writes content to a temp file in the target directory
	// and renames it over path, so a crash never leaves a truncated file.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// Rename moves an entry from oldPath to newPath.
	Rename(oldPath, newPath m.Path) error

	// Remove deletes a single file.
	Remove(path m.Path) error

	// Lstat returns metadata for a path without following symlinks.
	Lstat(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// CopyDir recursively copies a directory tree, skipping .git.
	CopyDir(src, dst m.Path) error

	// CreateTempDir creates a temporary directory for a template clone.
	CreateTempDir(pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalTemplateFSAdapter is the concrete implementation backed by the os
// package.
type LocalTemplateFSAdapter struct{}

// NewLocalTemplateFSAdapter constructs a LocalTemplateFSAdapter ready to be
// wired into the workflow.
func NewLocalTemplateFSAdapter() *LocalTemplateFSAdapter {
	return &LocalTemplateFSAdapter{}
}

// ReadDir lists the entries of a single directory level.
func (a *LocalTemplateFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalTemplateFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalTemplateFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// WriteFileAtomic writes content next to the target and renames it into place.
func (a *LocalTemplateFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, ".plate-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}

// Rename moves an entry from oldPath to newPath.
func (a *LocalTemplateFSAdapter) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// Remove deletes a single file.
func (a *LocalTemplateFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// Lstat returns os.FileInfo metadata without following symlinks.
func (a *LocalTemplateFSAdapter) Lstat(path m.Path) (os.FileInfo, error) {
	return os.Lstat(string(path))
}

// MkdirAll creates a directory and any missing parents.
func (a *LocalTemplateFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// CreateTempDir creates a temporary directory for a template clone.
func (a *LocalTemplateFSAdapter) CreateTempDir(pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalTemplateFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// CopyDir recursively copies a directory tree.
func (a *LocalTemplateFSAdapter) CopyDir(src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		// The clone's version-control metadata must not leak into the new project.
		if info.IsDir() && filepath.Base(path) == ".git" {
			return filepath.SkipDir
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode())
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalTemplateFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is a template file path resolved by the workflow, not raw user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is an internal destination path, not raw user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// JoinPath joins path elements into a single path.
func (a *LocalTemplateFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

var _ TemplateFSAdapter = (*LocalTemplateFSAdapter)(nil)
