package input

import "testing"

func TestHistorySkipsEmptyAndDuplicateLines(t *testing.T) {
	h := NewHistory(10)
	h.Add("ls")
	h.Add("")
	h.Add("ls")
	h.Add("pwd")
	h.Add("pwd")
	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		h.Add(s)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	// Walking all the way back lands on the oldest retained entry.
	var last string
	for {
		entry, ok := h.Prev()
		if !ok {
			break
		}
		last = entry
	}
	if last != "b" {
		t.Errorf("expected oldest retained entry %q, got %q", "b", last)
	}
}

func TestHistoryBrowseResetOnAdd(t *testing.T) {
	h := NewHistory(10)
	h.Add("one")
	h.Add("two")

	if entry, ok := h.Prev(); !ok || entry != "two" {
		t.Fatalf("expected to step to %q, got %q (%v)", "two", entry, ok)
	}
	h.Add("three")
	if entry, ok := h.Prev(); !ok || entry != "three" {
		t.Errorf("Add should reset browsing to the newest entry, got %q (%v)", entry, ok)
	}
}

func TestHistoryPrevOnEmpty(t *testing.T) {
	h := NewHistory(10)
	if _, ok := h.Prev(); ok {
		t.Error("Prev on empty history should report false")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next on empty history should report false")
	}
}

func TestHistorySeed(t *testing.T) {
	h := NewHistory(10)
	h.Seed([]string{"old1", "old2"})
	if h.Len() != 2 {
		t.Fatalf("expected 2 seeded entries, got %d", h.Len())
	}
	if entry, ok := h.Prev(); !ok || entry != "old2" {
		t.Errorf("expected newest seeded entry %q, got %q (%v)", "old2", entry, ok)
	}
}
