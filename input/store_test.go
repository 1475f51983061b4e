package input

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	for _, line := range []string{"first", "second", "third"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("append %q: %v", line, err)
		}
	}

	lines, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestStoreRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	for _, line := range []string{"a", "b", "c", "d"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	lines, err := s.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(lines) != 2 || lines[0] != "c" || lines[1] != "d" {
		t.Errorf("expected the 2 newest lines oldest-first, got %v", lines)
	}
}

func TestStoreSkipsEmptyLines(t *testing.T) {
	s := openTestStore(t)
	if err := s.Append(""); err != nil {
		t.Fatalf("append empty: %v", err)
	}
	lines, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("empty lines should not be persisted, got %v", lines)
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Append("persisted"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = OpenStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()

	lines, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent after reopen: %v", err)
	}
	if len(lines) != 1 || lines[0] != "persisted" {
		t.Errorf("expected persisted entry to survive reopen, got %v", lines)
	}
}

func TestStoreSeedsHistory(t *testing.T) {
	s := openTestStore(t)
	for _, line := range []string{"one", "two"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	lines, err := s.Recent(100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}

	h := NewHistory(100)
	h.Seed(lines)
	if entry, ok := h.Prev(); !ok || entry != "two" {
		t.Errorf("expected newest persisted entry %q, got %q (%v)", "two", entry, ok)
	}
}
