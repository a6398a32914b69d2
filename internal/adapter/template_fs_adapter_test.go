package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "plate.dev/pkg/plate/internal/model"
)

func TestLocalTemplateFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalTemplateFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "README.md"), "hello\n")
	mustMkdir(t, filepath.Join(root, "Sources"))

	entries, err := adapter.ReadDir(m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	for _, want := range []string{"README.md", "Sources"} {
		if !containsName(names, want) {
			t.Fatalf("ReadDir() did not list %s, got %v", want, names)
		}
	}
}

func TestLocalTemplateFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalTemplateFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "README.md")
	content := "# {PROJECT}\nby {AUTHOR}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalTemplateFSAdapter_WriteFileAtomic(t *testing.T) {
	adapter := NewLocalTemplateFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "out.txt")

	if err := adapter.WriteFileAtomic(m.Path(path), []byte("first\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	// Overwriting an existing file must also succeed.
	if err := adapter.WriteFileAtomic(m.Path(path), []byte("second\n"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result: %v", err)
	}

	if string(got) != "second\n" {
		t.Fatalf("WriteFileAtomic() content = %q, want %q", string(got), "second\n")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("listing dir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFileAtomic() left temp files behind: %d entries", len(entries))
	}
}

func TestLocalTemplateFSAdapter_RenameAndRemove(t *testing.T) {
	adapter := NewLocalTemplateFSAdapter()

	root := t.TempDir()
	oldPath := filepath.Join(root, "{PROJECT}.txt")
	newPath := filepath.Join(root, "Foo.txt")
	writeTestFile(t, oldPath, "content\n")

	if err := adapter.Rename(m.Path(oldPath), m.Path(newPath)); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Fatalf("Rename() left the original path in place")
	}

	if err := adapter.Remove(m.Path(newPath)); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := os.Stat(newPath); !os.IsNotExist(err) {
		t.Fatalf("Remove() did not delete the file")
	}
}

func TestLocalTemplateFSAdapter_CreateTempDirAndRemoveAll(t *testing.T) {
	adapter := NewLocalTemplateFSAdapter()

	tmp, err := adapter.CreateTempDir("plate-test-")
	if err != nil {
		t.Fatalf("CreateTempDir() error = %v", err)
	}

	if fi, err := os.Stat(string(tmp)); err != nil || !fi.IsDir() {
		t.Fatalf("CreateTempDir() did not create directory, stat err=%v", err)
	}

	filePath := filepath.Join(string(tmp), "file.txt")
	writeTestFile(t, filePath, "x\n")

	if err := adapter.RemoveAll(tmp); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(string(tmp)); !os.IsNotExist(err) {
		t.Fatalf("RemoveAll() did not remove directory, stat err=%v", err)
	}
}

func TestLocalTemplateFSAdapter_CopyDir(t *testing.T) {
	adapter := NewLocalTemplateFSAdapter()

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "dest")

	subDir := filepath.Join(src, "Sources")
	mustMkdir(t, subDir)
	writeTestFile(t, filepath.Join(subDir, "main.swift"), "print(\"{PROJECT}\")\n")
	writeTestFile(t, filepath.Join(src, "README.md"), "# {PROJECT}\n")

	// Version-control metadata must not be copied.
	gitDir := filepath.Join(src, ".git")
	mustMkdir(t, gitDir)
	writeTestFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/main\n")

	if err := adapter.CopyDir(m.Path(src), m.Path(dst)); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "Sources", "main.swift")); err != nil {
		t.Fatalf("CopyDir() did not copy nested file: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "README.md")); err != nil {
		t.Fatalf("CopyDir() did not copy top-level file: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, ".git")); !os.IsNotExist(err) {
		t.Fatalf("CopyDir() copied .git, stat err=%v", err)
	}
}

func TestLocalTemplateFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalTemplateFSAdapter()

	joined := adapter.JoinPath("/tmp", "project", "sub", "file.txt")
	if string(joined) != filepath.Join("/tmp", "project", "sub", "file.txt") {
		t.Fatalf("JoinPath() = %s", joined)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsName(names []string, target string) bool {
	for _, name := range names {
		if name == target {
			return true
		}
	}

	return false
}
