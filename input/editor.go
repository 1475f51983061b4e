// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/editor.go
// Summary: Editor manages the uncommitted input line and its cursor.
// It is the single source of truth for the line being composed; hosts
// echo its state through the grid however they choose.

package input

// Editor owns the current (uncommitted) input line and the cursor
// position within it. The cursor is a rune offset in [0, len(line)];
// position len(line) is the append position.
type Editor struct {
	line   []rune
	cursor int

	history *History
	// draft preserves the in-progress line while browsing history.
	draft []rune
	// browsing is true while the displayed line comes from history.
	browsing bool
}

// NewEditor creates an editor backed by the given history. A nil
// history disables recall but editing still works.
func NewEditor(history *History) *Editor {
	return &Editor{history: history}
}

// --- Editing operations ---

// Insert places r at the cursor, shifting the tail right, and advances
// the cursor past it.
func (e *Editor) Insert(r rune) {
	e.line = append(e.line, 0)
	copy(e.line[e.cursor+1:], e.line[e.cursor:])
	e.line[e.cursor] = r
	e.cursor++
}

// Backspace removes the rune before the cursor. At the start of the
// line it does nothing.
func (e *Editor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.line = append(e.line[:e.cursor-1], e.line[e.cursor:]...)
	e.cursor--
}

// Delete removes the rune under the cursor. At the end of the line it
// does nothing.
func (e *Editor) Delete() {
	if e.cursor >= len(e.line) {
		return
	}
	e.line = append(e.line[:e.cursor], e.line[e.cursor+1:]...)
}

// Kill truncates the line at the cursor and returns the removed tail.
func (e *Editor) Kill() string {
	killed := string(e.line[e.cursor:])
	e.line = e.line[:e.cursor]
	return killed
}

// --- Cursor movement ---

// MoveLeft moves the cursor one rune left, stopping at 0.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor one rune right, stopping at the append
// position.
func (e *Editor) MoveRight() {
	if e.cursor < len(e.line) {
		e.cursor++
	}
}

// MoveHome moves the cursor to the start of the line.
func (e *Editor) MoveHome() { e.cursor = 0 }

// MoveEnd moves the cursor to the append position.
func (e *Editor) MoveEnd() { e.cursor = len(e.line) }

// --- History recall ---

// HistoryPrev replaces the line with the previous history entry. The
// first step up stashes the in-progress draft so it can be restored.
func (e *Editor) HistoryPrev() {
	if e.history == nil {
		return
	}
	entry, ok := e.history.Prev()
	if !ok {
		return
	}
	if !e.browsing {
		e.draft = append([]rune(nil), e.line...)
		e.browsing = true
	}
	e.setLine(entry)
}

// HistoryNext replaces the line with the next history entry, restoring
// the stashed draft once browsing walks past the newest entry.
func (e *Editor) HistoryNext() {
	if e.history == nil || !e.browsing {
		return
	}
	entry, ok := e.history.Next()
	if ok {
		e.setLine(entry)
		return
	}
	e.line = e.draft
	e.draft = nil
	e.browsing = false
	e.cursor = len(e.line)
}

// Submit commits the current line: it is appended to history, the
// editor resets to an empty line, and the committed text is returned.
func (e *Editor) Submit() string {
	text := string(e.line)
	if e.history != nil {
		e.history.Add(text)
	}
	e.line = nil
	e.draft = nil
	e.cursor = 0
	e.browsing = false
	return text
}

func (e *Editor) setLine(s string) {
	e.line = []rune(s)
	e.cursor = len(e.line)
}

// --- State ---

// Line returns the current line content.
func (e *Editor) Line() string { return string(e.line) }

// Cursor returns the cursor offset in runes.
func (e *Editor) Cursor() int { return e.cursor }
