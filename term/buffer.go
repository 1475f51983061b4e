// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/buffer.go
// Summary: Buffer - the scrollback-backed character grid model.
// Usage: Single-owner; hosts must serialize access externally.
// Notes: Every index operation clamps; nothing here panics or errors.

package term

import "strings"

// Tab stops are fixed every 8 columns.
const tabWidth = 8

// Config holds construction-time parameters for a Buffer.
type Config struct {
	// Width and Height are the viewport dimensions in cells.
	Width  int
	Height int

	// MaxScrollback is the number of lines retained beyond the viewport.
	// Total line count never exceeds Height + MaxScrollback.
	MaxScrollback int

	// DefaultFG and DefaultBG are restored by SGR 0/39/49.
	DefaultFG Color
	DefaultBG Color
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Width:         80,
		Height:        24,
		MaxScrollback: 1000,
		DefaultFG:     DefaultFG,
		DefaultBG:     DefaultBG,
	}
}

// Buffer owns the grid of lines, the cursor, wrap/newline/tab semantics
// and bounded scrollback eviction. It embeds the escape-sequence decoder:
// ordinary text becomes styled cells, escape sequences mutate the
// decoder's current style, and everything malformed is consumed silently.
//
// The buffer is fully synchronous and designed for exclusive ownership by
// one update/render loop. It has no internal locking.
type Buffer struct {
	parser *Parser
	lines  *lineRing

	width         int
	height        int
	maxScrollback int

	// cursorRow indexes into the line list (0 = oldest retained line).
	// cursorCol is always in [0, width]; reaching width wraps before the
	// next glyph is placed.
	cursorRow int
	cursorCol int

	// scrollOffset counts lines scrolled back from the newest content.
	// 0 means the newest content is visible.
	scrollOffset int
}

// NewBuffer creates a buffer with fixed viewport dimensions. The line
// list grows lazily as writes reach new rows.
func NewBuffer(cfg Config) *Buffer {
	if cfg.Width < 1 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.Height < 1 {
		cfg.Height = DefaultConfig().Height
	}
	if cfg.MaxScrollback < 0 {
		cfg.MaxScrollback = 0
	}
	return &Buffer{
		parser: NewParser(WithDefaultColors(cfg.DefaultFG, cfg.DefaultBG)),
		lines:  newLineRing(cfg.Height + cfg.MaxScrollback),
		width:  cfg.Width,
		height: cfg.Height,

		maxScrollback: cfg.MaxScrollback,
	}
}

// --- Writing ---

// Write feeds text through the decoder character by character. \n, \r and
// \t are interpreted here; everything else routes through the decoder and
// placed cells advance the cursor, wrapping at viewport width.
func (b *Buffer) Write(text string) {
	for _, r := range text {
		switch r {
		case '\n':
			b.newline()
		case '\r':
			b.cursorCol = 0
		case '\t':
			b.tab()
		default:
			if cell, ok := b.parser.Parse(r); ok {
				b.placeCell(cell)
			}
		}
	}
}

// newline moves to column 0 of the next row, growing the line list and
// trimming scrollback as needed.
func (b *Buffer) newline() {
	b.cursorCol = 0
	b.cursorRow++
	b.ensureLine(b.cursorRow)
	b.trimScrollback()
}

// tab emits space cells one at a time up to the next multiple-of-8
// column, capped at viewport width. The spaces carry the current style.
func (b *Buffer) tab() {
	next := (b.cursorCol/tabWidth + 1) * tabWidth
	if next > b.width {
		next = b.width
	}
	for b.cursorCol < next {
		cell, ok := b.parser.Parse(' ')
		if !ok {
			break
		}
		b.placeCell(cell)
	}
}

// placeCell wraps if the previous glyph filled the last column, then
// writes the cell at the cursor and advances one column.
func (b *Buffer) placeCell(cell Cell) {
	b.wrapIfNeeded()
	line := b.ensureLine(b.cursorRow)
	line.SetCell(b.cursorCol, cell)
	b.cursorCol++
}

// wrapIfNeeded performs the deferred auto-wrap: once the cursor column
// reaches the viewport width, the next glyph starts a new row marked as a
// wrap continuation.
func (b *Buffer) wrapIfNeeded() {
	if b.cursorCol < b.width {
		return
	}
	b.cursorCol = 0
	b.cursorRow++
	line := b.ensureLine(b.cursorRow)
	line.Wrapped = true
	b.trimScrollback()
}

// ensureLine grows the line list until row exists and returns that line.
// Appending into a full ring evicts the oldest line; the cursor row is
// decremented by the eviction count so it keeps referencing the same
// logical line. A buffer in an inconsistent state self-heals here.
func (b *Buffer) ensureLine(row int) *Line {
	if row < 0 {
		row = 0
	}
	for b.lines.Len() <= row {
		if evicted := b.lines.Append(NewLine()); evicted > 0 {
			row -= evicted
			if row < 0 {
				row = 0
			}
			b.cursorRow -= evicted
			if b.cursorRow < 0 {
				b.cursorRow = 0
			}
		}
	}
	return b.lines.At(row)
}

// trimScrollback drops the oldest lines while the total exceeds
// height + maxScrollback, decrementing the cursor row for each (floor 0).
func (b *Buffer) trimScrollback() {
	limit := b.height + b.maxScrollback
	for b.lines.Len() > limit {
		b.lines.DropOldest()
		if b.cursorRow > 0 {
			b.cursorRow--
		}
	}
}

// --- Lifecycle ---

// Resize updates the viewport dimensions. The line list grows only when
// the new height exceeds the current line count. Existing content keeps
// its old wrap boundaries; lines are not reflowed for the new width.
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height

	// Recreate the ring when the retention cap changes, keeping the
	// newest lines.
	newCap := b.height + b.maxScrollback
	if newCap != b.lines.Capacity() {
		kept := b.lines.Len()
		dropped := 0
		if kept > newCap {
			dropped = kept - newCap
			kept = newCap
		}
		ring := newLineRing(newCap)
		for _, line := range b.lines.Range(dropped, dropped+kept) {
			ring.Append(line)
		}
		b.lines = ring
		b.cursorRow -= dropped
		if b.cursorRow < 0 {
			b.cursorRow = 0
		}
	}

	for b.lines.Len() < b.height {
		b.lines.Append(NewLine())
	}

	if b.cursorCol > b.width {
		b.cursorCol = b.width
	}
	if b.cursorRow >= b.lines.Len() {
		b.cursorRow = b.lines.Len() - 1
	}
}

// Clear replaces the line list with height empty lines and returns the
// cursor and scroll offset to the origin.
func (b *Buffer) Clear() {
	b.lines = newLineRing(b.height + b.maxScrollback)
	for i := 0; i < b.height; i++ {
		b.lines.Append(NewLine())
	}
	b.cursorRow = 0
	b.cursorCol = 0
	b.scrollOffset = 0
}

// Reset clears the grid and additionally returns the decoder to its
// initial state: default colors, no attributes, no pending sequence.
func (b *Buffer) Reset() {
	b.Clear()
	b.parser.Reset()
}

// --- Scrolling ---

// maxScrollOffset is the largest offset that still shows content.
func (b *Buffer) maxScrollOffset() int {
	m := b.lines.Len() - b.height
	if m < 0 {
		return 0
	}
	return m
}

// ScrollUp scrolls n lines toward older content. Content is never
// mutated by scrolling.
func (b *Buffer) ScrollUp(n int) {
	if n < 0 {
		n = 0
	}
	b.scrollOffset += n
	if max := b.maxScrollOffset(); b.scrollOffset > max {
		b.scrollOffset = max
	}
}

// ScrollDown scrolls n lines toward newer content.
func (b *Buffer) ScrollDown(n int) {
	if n < 0 {
		n = 0
	}
	b.scrollOffset -= n
	if b.scrollOffset < 0 {
		b.scrollOffset = 0
	}
}

// ScrollToTop shows the oldest retained content.
func (b *Buffer) ScrollToTop() {
	b.scrollOffset = b.maxScrollOffset()
}

// ScrollToBottom returns to the newest content.
func (b *Buffer) ScrollToBottom() {
	b.scrollOffset = 0
}

// ScrollOffset returns the current scrollback offset (0 = newest).
func (b *Buffer) ScrollOffset() int {
	return b.scrollOffset
}

// --- Accessors ---

// Width returns the viewport width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the viewport height in cells.
func (b *Buffer) Height() int { return b.height }

// MaxScrollback returns the scrollback retention depth.
func (b *Buffer) MaxScrollback() int { return b.maxScrollback }

// TotalLines returns the number of retained lines (scrollback included).
func (b *Buffer) TotalLines() int { return b.lines.Len() }

// Cursor returns the cursor position as (row, col). The row indexes the
// retained line list, not the viewport.
func (b *Buffer) Cursor() (row, col int) {
	return b.cursorRow, b.cursorCol
}

// LineAt returns the retained line at index i (0 = oldest), or nil when
// out of range.
func (b *Buffer) LineAt(i int) *Line {
	return b.lines.At(i)
}

// CellAt returns the cell at (row, col), blank when out of range.
func (b *Buffer) CellAt(row, col int) Cell {
	line := b.lines.At(row)
	if line == nil {
		return blankCell()
	}
	return line.CellAt(col)
}

// Snapshot returns the retained content as plain text, one line per row.
func (b *Buffer) Snapshot() string {
	var sb strings.Builder
	for i := 0; i < b.lines.Len(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.lines.At(i).Text())
	}
	return sb.String()
}
