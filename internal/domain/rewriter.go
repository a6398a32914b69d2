package domain

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"plate.dev/pkg/plate/internal/adapter"
	m "plate.dev/pkg/plate/internal/model"
)

// hiddenMarker prefixes entries the walker never touches (metadata
// folders like .git, editor droppings).
const hiddenMarker = "."

// RewriteOptions tune the rewrite engine for one walk.
type RewriteOptions struct {
	// Atomic writes file content to a temp file in the target directory and
	// renames it into place. The fast path (default) writes directly, which
	// can leave a partially written file after a crash.
	Atomic bool

	// Exclude lists entry names to skip in addition to hidden entries and
	// the template manifest file.
	Exclude []string
}

// Rewriter walks a template tree depth-first, renaming entries and
// rewriting file contents through a Substituter. The tree is mutated in
// place; any filesystem error aborts the walk with no rollback.
type Rewriter interface {
	RewriteTree(root m.Path, set m.Substitutions) error
}

type rewriter struct {
	adapter.TemplateFSAdapter
	opts RewriteOptions
}

// NewRewriter creates a Rewriter backed by the given filesystem adapter.
func NewRewriter(fs adapter.TemplateFSAdapter, opts RewriteOptions) Rewriter {
	return &rewriter{TemplateFSAdapter: fs, opts: opts}
}

// RewriteTree applies the substitution set to every entry name and file
// content under root. The set must be fully resolved before the walk.
func (r *rewriter) RewriteTree(root m.Path, set m.Substitutions) error {
	info, err := r.Lstat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", root)
	}

	return r.rewriteDir(root, NewSubstituter(set))
}

// rewriteDir processes one directory level. Folders are descended into
// before they are renamed so inner paths stay reachable by their original
// names while being processed.
func (r *rewriter) rewriteDir(dir m.Path, sub *Substituter) error {
	entries, err := r.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()

		if r.skip(name) {
			slog.Debug("skipping entry", "dir", dir, "name", name)
			continue
		}

		if entry.Type()&os.ModeSymlink != 0 {
			slog.Debug("skipping symlink", "dir", dir, "name", name)
			continue
		}

		oldPath := r.JoinPath(string(dir), name)
		newPath := r.JoinPath(string(dir), sub.Substitute(name))

		if newPath != oldPath {
			if _, statErr := r.Lstat(newPath); statErr == nil {
				return fmt.Errorf("%w: %s already exists, refusing to overwrite it with %s", ErrRenameCollision, newPath, oldPath)
			}
		}

		if entry.IsDir() {
			if err := r.rewriteDir(oldPath, sub); err != nil {
				return err
			}

			if newPath != oldPath {
				if err := r.Rename(oldPath, newPath); err != nil {
					return fmt.Errorf("rename folder %s: %w", oldPath, err)
				}
			}

			continue
		}

		if err := r.rewriteFile(entry, oldPath, newPath, sub); err != nil {
			return err
		}
	}

	return nil
}

func (r *rewriter) rewriteFile(entry os.DirEntry, oldPath, newPath m.Path, sub *Substituter) error {
	content, err := r.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", oldPath, err)
	}

	if !utf8.Valid(content) {
		return fmt.Errorf("%w: %s", ErrBinaryContent, oldPath)
	}

	info, err := entry.Info()
	if err != nil {
		return fmt.Errorf("stat %s: %w", oldPath, err)
	}

	rewritten := []byte(sub.Substitute(string(content)))

	if r.opts.Atomic {
		err = r.WriteFileAtomic(newPath, rewritten, info.Mode().Perm())
	} else {
		err = r.WriteFile(newPath, rewritten, info.Mode().Perm())
	}

	if err != nil {
		return fmt.Errorf("write %s: %w", newPath, err)
	}

	if newPath != oldPath {
		if err := r.Remove(oldPath); err != nil {
			return fmt.Errorf("remove %s: %w", oldPath, err)
		}
	}

	return nil
}

func (r *rewriter) skip(name string) bool {
	if len(name) > 0 && name[:1] == hiddenMarker {
		return true
	}

	if name == m.ManifestFileName {
		return true
	}

	for _, excluded := range r.opts.Exclude {
		if name == excluded {
			return true
		}
	}

	return false
}
