package fs

import (
	"os"
	"path/filepath"
	"testing"
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

func TestWalkDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "kjv.txt"), "x")
	writeFile(t, filepath.Join(dir, "web.tsv"), "x")
	writeFile(t, filepath.Join(dir, "notes.md"), "x")
	writeFile(t, filepath.Join(dir, ".git", "junk.txt"), "x")
	writeFile(t, filepath.Join(dir, "sub", "asv.txt"), "x")

	w := NewWalker(nil, nil)
	files, err := w.Walk(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %+v", len(files), files)
	}
	// Path order is deterministic.
	if filepath.Base(files[0].Path) != "kjv.txt" ||
		filepath.Base(files[1].Path) != "asv.txt" ||
		filepath.Base(files[2].Path) != "web.tsv" {
		t.Errorf("unexpected order: %v, %v, %v", files[0].Path, files[1].Path, files[2].Path)
	}
}

func TestWalkExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "kjv.txt"), "x")
	writeFile(t, filepath.Join(dir, "drafts", "wip.txt"), "x")

	w := NewWalker(nil, []string{"drafts/**"})
	files, err := w.Walk(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0].Path) != "kjv.txt" {
		t.Errorf("expected only kjv.txt, got %+v", files)
	}
}

func TestWalkSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kjv.txt")
	writeFile(t, path, "John 3:16 text")

	w := NewWalker(nil, nil)
	files, err := w.Walk(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Path != path {
		t.Errorf("expected the file itself, got %+v", files)
	}
}
