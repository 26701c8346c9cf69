package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_LoadMissingFileReturnsZero(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	score, err := s.Load()
	if err != nil {
		t.Fatalf("Load of missing file must not error: %v", err)
	}
	if score != 0 {
		t.Errorf("Score = %d, want 0", score)
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Save(1250); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	score, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if score != 1250 {
		t.Errorf("Score = %d, want 1250", score)
	}

	// Перезапись новым рекордом
	if err := s.Save(2000); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	score, _ = s.Load()
	if score != 2000 {
		t.Errorf("Score after overwrite = %d, want 2000", score)
	}
}

func TestFileStore_RejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Пишем мусор вместо записи рекорда
	if err := os.WriteFile(filepath.Join(dir, "highscore.snake"), []byte("GARBAGE-DATA-123"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(); err == nil {
		t.Error("Load must reject a file with bad magic")
	}
}
