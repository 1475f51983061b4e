// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/ring.go
// Summary: Fixed-capacity ring buffer of lines with O(1) eviction.
// Usage: Backing store for Buffer; oldest lines evict first.

package term

// lineRing stores lines in a fixed-capacity ring. Appending when full
// evicts the oldest line, which keeps front-removal O(1) while behaving
// exactly like a grow-then-trim list from the outside.
type lineRing struct {
	slots []*Line
	head  int // index of the oldest line
	size  int
}

// newLineRing creates a ring holding at most capacity lines.
func newLineRing(capacity int) *lineRing {
	if capacity < 1 {
		capacity = 1
	}
	return &lineRing{slots: make([]*Line, capacity)}
}

// Len returns the number of stored lines.
func (r *lineRing) Len() int {
	return r.size
}

// Capacity returns the maximum number of stored lines.
func (r *lineRing) Capacity() int {
	return len(r.slots)
}

// At returns the line at logical index i (0 = oldest), or nil when i is
// out of range.
func (r *lineRing) At(i int) *Line {
	if i < 0 || i >= r.size {
		return nil
	}
	return r.slots[(r.head+i)%len(r.slots)]
}

// Append adds a line at the newest end. Returns the number of lines
// evicted to make room (0 or 1).
func (r *lineRing) Append(l *Line) int {
	evicted := 0
	if r.size == len(r.slots) {
		r.dropOldest()
		evicted = 1
	}
	r.slots[(r.head+r.size)%len(r.slots)] = l
	r.size++
	return evicted
}

// DropOldest removes the oldest line. No-op on an empty ring.
func (r *lineRing) DropOldest() {
	if r.size > 0 {
		r.dropOldest()
	}
}

func (r *lineRing) dropOldest() {
	r.slots[r.head] = nil // release for GC
	r.head = (r.head + 1) % len(r.slots)
	r.size--
}

// Range returns the lines in [start, end), clamped to valid bounds.
func (r *lineRing) Range(start, end int) []*Line {
	if start < 0 {
		start = 0
	}
	if end > r.size {
		end = r.size
	}
	if start >= end {
		return nil
	}
	out := make([]*Line, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, r.At(i))
	}
	return out
}
