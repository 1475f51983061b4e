// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/viewport.go
// Summary: Viewport projection - the visible slice for a scroll offset.
// Usage: Called on every render; never cached.

package term

// Visible returns the lines currently in view. The projection is
// recomputed from scratch on every call, so scrollback growth and
// eviction are always correctly reflected: for offset o and total t,
// the visible range is [max(0, t-o-height), max(0, t-o)).
//
// The returned slice may be shorter than the viewport height when the
// buffer holds fewer lines; callers paint the remainder blank.
func (b *Buffer) Visible() []*Line {
	total := b.lines.Len()

	end := total - b.scrollOffset
	if end < 0 {
		end = 0
	}
	start := end - b.height
	if start < 0 {
		start = 0
	}
	return b.lines.Range(start, end)
}

// VisibleCursor returns the cursor position relative to the viewport
// origin and whether the cursor row is currently in view.
func (b *Buffer) VisibleCursor() (row, col int, visible bool) {
	total := b.lines.Len()
	end := total - b.scrollOffset
	if end < 0 {
		end = 0
	}
	start := end - b.height
	if start < 0 {
		start = 0
	}
	if b.cursorRow < start || b.cursorRow >= end {
		return 0, 0, false
	}
	return b.cursorRow - start, b.cursorCol, true
}
