// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/testharness.go
// Summary: Test harness for decoder and buffer verification.
// Usage: Used by test files to send input and inspect grid state.
// Notes: Provides helpers for systematic testing of write semantics.

package term

import (
	"fmt"
	"strings"
	"testing"
)

// TestHarness provides utilities for testing decoder/buffer behavior.
type TestHarness struct {
	buf *Buffer
}

// NewTestHarness creates a harness with the given viewport size and
// scrollback depth.
func NewTestHarness(width, height, scrollback int) *TestHarness {
	return &TestHarness{buf: NewBuffer(Config{
		Width:         width,
		Height:        height,
		MaxScrollback: scrollback,
	})}
}

// Buffer exposes the underlying buffer for direct calls.
func (h *TestHarness) Buffer() *Buffer {
	return h.buf
}

// Send writes a string (text and/or escape sequences) to the buffer.
func (h *TestHarness) Send(s string) {
	h.buf.Write(s)
}

// CellAt returns the cell at (row, col) in the retained line list.
func (h *TestHarness) CellAt(row, col int) Cell {
	return h.buf.CellAt(row, col)
}

// RowText returns the plain text of a retained row, empty when the row
// does not exist.
func (h *TestHarness) RowText(row int) string {
	line := h.buf.LineAt(row)
	if line == nil {
		return ""
	}
	return line.Text()
}

// AssertText verifies that a row's content starts with the expected text.
func (h *TestHarness) AssertText(t *testing.T, row int, expected string) {
	t.Helper()
	got := h.RowText(row)
	if !strings.HasPrefix(got, expected) {
		t.Errorf("row %d: expected %q, got %q", row, expected, got)
	}
}

// AssertCursor verifies the cursor position.
func (h *TestHarness) AssertCursor(t *testing.T, expectedRow, expectedCol int) {
	t.Helper()
	row, col := h.buf.Cursor()
	if row != expectedRow || col != expectedCol {
		t.Errorf("cursor: expected (%d,%d), got (%d,%d)", expectedRow, expectedCol, row, col)
	}
}

// AssertTotalLines verifies the retained line count.
func (h *TestHarness) AssertTotalLines(t *testing.T, expected int) {
	t.Helper()
	if got := h.buf.TotalLines(); got != expected {
		t.Errorf("total lines: expected %d, got %d", expected, got)
	}
}

// Dump returns a visual representation of the retained lines for
// debugging, with the viewport range and wrap markers annotated.
func (h *TestHarness) Dump() string {
	var sb strings.Builder
	total := h.buf.TotalLines()
	row, col := h.buf.Cursor()
	sb.WriteString(fmt.Sprintf("Buffer %dx%d (+%d scrollback), %d lines, cursor (%d,%d), offset %d\n",
		h.buf.Width(), h.buf.Height(), h.buf.MaxScrollback(), total, row, col, h.buf.ScrollOffset()))

	visible := h.buf.Visible()
	visStart := total - h.buf.ScrollOffset() - len(visible)

	for i := 0; i < total; i++ {
		marker := " "
		if i >= visStart && i < visStart+len(visible) {
			marker = "*"
		}
		line := h.buf.LineAt(i)
		wrapped := ""
		if line.Wrapped {
			wrapped = " (wrapped)"
		}
		sb.WriteString(fmt.Sprintf("%s|%s| %d%s\n", marker, line.Text(), i, wrapped))
	}
	return sb.String()
}
