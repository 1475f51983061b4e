package input

import "testing"

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

func assertLine(t *testing.T, e *Editor, line string, cursor int) {
	t.Helper()
	if e.Line() != line {
		t.Errorf("line: expected %q, got %q", line, e.Line())
	}
	if e.Cursor() != cursor {
		t.Errorf("cursor: expected %d, got %d", cursor, e.Cursor())
	}
}

func TestInsertAtCursor(t *testing.T) {
	e := NewEditor(nil)
	typeString(e, "helo")
	e.MoveLeft()
	e.Insert('l')
	assertLine(t, e, "hello", 4)
}

func TestBackspaceAndDelete(t *testing.T) {
	e := NewEditor(nil)
	typeString(e, "abc")
	e.Backspace()
	assertLine(t, e, "ab", 2)

	e.MoveHome()
	e.Backspace() // no-op at start of line
	assertLine(t, e, "ab", 0)

	e.Delete()
	assertLine(t, e, "b", 0)

	e.MoveEnd()
	e.Delete() // no-op at end of line
	assertLine(t, e, "b", 1)
}

func TestKillReturnsTail(t *testing.T) {
	e := NewEditor(nil)
	typeString(e, "hello world")
	e.MoveHome()
	for i := 0; i < 5; i++ {
		e.MoveRight()
	}
	if killed := e.Kill(); killed != " world" {
		t.Errorf("expected killed tail %q, got %q", " world", killed)
	}
	assertLine(t, e, "hello", 5)
}

func TestCursorMovementClamps(t *testing.T) {
	e := NewEditor(nil)
	typeString(e, "ab")
	e.MoveRight() // already at end
	assertLine(t, e, "ab", 2)
	e.MoveHome()
	e.MoveLeft() // already at start
	assertLine(t, e, "ab", 0)
}

func TestMultibyteRunesAreSingleUnits(t *testing.T) {
	e := NewEditor(nil)
	typeString(e, "héllo")
	e.MoveHome()
	e.MoveRight()
	e.MoveRight()
	e.Delete() // removes one rune, not one byte
	assertLine(t, e, "hélo", 2)
}

func TestSubmitCommitsAndResets(t *testing.T) {
	h := NewHistory(10)
	e := NewEditor(h)
	typeString(e, "ls -la")
	if got := e.Submit(); got != "ls -la" {
		t.Errorf("expected submitted %q, got %q", "ls -la", got)
	}
	assertLine(t, e, "", 0)
	if h.Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", h.Len())
	}
}

func TestHistoryRecallPreservesDraft(t *testing.T) {
	h := NewHistory(10)
	e := NewEditor(h)
	typeString(e, "first")
	e.Submit()
	typeString(e, "second")
	e.Submit()

	typeString(e, "draft")
	e.HistoryPrev()
	assertLine(t, e, "second", 6)
	e.HistoryPrev()
	assertLine(t, e, "first", 5)
	e.HistoryPrev() // already at oldest
	assertLine(t, e, "first", 5)

	e.HistoryNext()
	assertLine(t, e, "second", 6)
	e.HistoryNext() // past newest: restore the draft
	assertLine(t, e, "draft", 5)
	e.HistoryNext() // not browsing anymore
	assertLine(t, e, "draft", 5)
}

func TestRecalledEntryIsEditable(t *testing.T) {
	h := NewHistory(10)
	e := NewEditor(h)
	typeString(e, "make")
	e.Submit()

	e.HistoryPrev()
	typeString(e, " test")
	if got := e.Submit(); got != "make test" {
		t.Errorf("expected %q, got %q", "make test", got)
	}
	if h.Len() != 2 {
		t.Errorf("expected 2 history entries, got %d", h.Len())
	}
}

func TestEditorWithoutHistory(t *testing.T) {
	e := NewEditor(nil)
	typeString(e, "x")
	e.HistoryPrev() // must not panic
	e.HistoryNext()
	assertLine(t, e, "x", 1)
	if got := e.Submit(); got != "x" {
		t.Errorf("expected %q, got %q", "x", got)
	}
}
