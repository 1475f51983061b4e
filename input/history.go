// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/history.go
// Summary: In-memory input history with a browse position.
// Notes: Bounded FIFO; optionally seeded from a persistent Store.

package input

// History holds submitted lines, newest last, with a cursor for
// Prev/Next browsing. Adding an entry resets the browse position.
type History struct {
	entries []string
	max     int
	// pos is the browse position; len(entries) means "not browsing".
	pos int
}

// NewHistory creates a history retaining at most max entries. A max
// below 1 falls back to 1000.
func NewHistory(max int) *History {
	if max < 1 {
		max = 1000
	}
	return &History{max: max, pos: 0}
}

// Seed loads previously persisted entries, oldest first. Intended to
// be called once before interactive use.
func (h *History) Seed(entries []string) {
	for _, e := range entries {
		h.Add(e)
	}
}

// Add appends a submitted line and resets browsing. Empty lines and
// immediate duplicates are not recorded.
func (h *History) Add(line string) {
	defer func() { h.pos = len(h.entries) }()
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Prev steps toward older entries. It reports false when already at
// the oldest entry or when the history is empty.
func (h *History) Prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next steps toward newer entries. It reports false when stepping past
// the newest entry, which ends browsing.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", false
	}
	return h.entries[h.pos], true
}

// Len returns the number of retained entries.
func (h *History) Len() int { return len(h.entries) }
