// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/line.go
// Summary: Line - a variable-length row of cells with a wrap marker.
// Usage: Unit of storage for the screen buffer and scrollback.

package term

import "strings"

// Line is an ordered, variable-length sequence of cells. Lines are not
// padded to viewport width; trailing blank columns simply do not exist.
//
// Wrapped marks the line as a continuation of the previous one caused by
// automatic wrap at viewport width, as opposed to an explicit newline.
type Line struct {
	Cells   []Cell
	Wrapped bool
}

// NewLine creates an empty line.
func NewLine() *Line {
	return &Line{Cells: make([]Cell, 0)}
}

// Len returns the number of cells in the line.
func (l *Line) Len() int {
	return len(l.Cells)
}

// SetCell places a cell at the given column, growing the line with blank
// cells as needed. Negative columns are ignored.
func (l *Line) SetCell(x int, cell Cell) {
	if x < 0 {
		return
	}
	for len(l.Cells) <= x {
		l.Cells = append(l.Cells, blankCell())
	}
	l.Cells[x] = cell
}

// CellAt returns the cell at the given column, or a blank cell when the
// column is outside the line's current length.
func (l *Line) CellAt(x int) Cell {
	if x < 0 || x >= len(l.Cells) {
		return blankCell()
	}
	return l.Cells[x]
}

// Clear removes all cells, keeping the wrap marker intact.
func (l *Line) Clear() {
	l.Cells = l.Cells[:0]
}

// Clone returns a deep copy of the line.
func (l *Line) Clone() *Line {
	cells := make([]Cell, len(l.Cells))
	copy(cells, l.Cells)
	return &Line{Cells: cells, Wrapped: l.Wrapped}
}

// Text returns the line's content as a plain string, styles discarded.
func (l *Line) Text() string {
	var sb strings.Builder
	sb.Grow(len(l.Cells))
	for _, c := range l.Cells {
		if c.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
