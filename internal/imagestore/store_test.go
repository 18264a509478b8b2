package imagestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lostFoundManagement/models"
)

func TestStore_Save(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(src, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	s := New(root)
	stored, err := s.Save(models.CategoryLost, src)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Lands under <root>/lost/ with the original base name kept
	if !strings.HasPrefix(stored, filepath.Join(root, "lost")+string(os.PathSeparator)) {
		t.Fatalf("stored outside category dir: %s", stored)
	}
	if !strings.HasSuffix(stored, "_photo.jpg") {
		t.Fatalf("base name not kept: %s", stored)
	}
	got, err := os.ReadFile(stored)
	if err != nil || string(got) != "jpeg-bytes" {
		t.Fatalf("stored content: %v %q", err, got)
	}

	// A second save of the same file gets its own path. The prefix has
	// millisecond resolution, so step past the current tick first.
	time.Sleep(2 * time.Millisecond)
	stored2, err := s.Save(models.CategoryLost, src)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if stored2 == stored {
		t.Fatalf("expected distinct stored paths, both %s", stored)
	}
}

func TestStore_SaveRejectsBadInput(t *testing.T) {
	s := New(t.TempDir())

	if _, err := s.Save("stolen", "whatever.jpg"); err == nil {
		t.Fatalf("expected error for invalid category")
	}
	if _, err := s.Save(models.CategoryFound, filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Fatalf("expected error for missing source file")
	}
}

func TestNewDefaultsRoot(t *testing.T) {
	s := New("")
	if s.root != "images" {
		t.Fatalf("default root: got %s", s.root)
	}
}
