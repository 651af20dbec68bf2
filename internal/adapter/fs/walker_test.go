package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"robotreadme/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_IncludeExclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "docs", "b.md"), "b")
	writeFile(t, filepath.Join(root, "main.go"), "package main")
	writeFile(t, filepath.Join(root, "vendor", "dep", "c.txt"), "c")

	w := NewWalker([]string{"**/*.txt", "**/*.md"}, []string{"vendor/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(files), files)
	}
	if filepath.Base(files[0].Path) != "a.txt" || filepath.Base(files[1].Path) != "b.md" {
		t.Errorf("unexpected files or order: %s, %s", files[0].Path, files[1].Path)
	}
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.bin"), "x")
	writeFile(t, filepath.Join(root, "sub", "y"), "y")

	files, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	writeFile(t, good, "héllo")

	text, err := ReadText(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "héllo" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestReadText_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := ReadText(path)
	var fae *domain.FileAccessError
	if !errors.As(err, &fae) {
		t.Fatalf("expected FileAccessError, got %v", err)
	}
	if fae.Path != path {
		t.Errorf("expected path %s in error, got %s", path, fae.Path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist in chain, got %v", err)
	}
}

func TestReadText_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.dat")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadText(path)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}
