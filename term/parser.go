// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser.go
// Summary: Rune-at-a-time ANSI/VT escape-sequence decoder.
// Usage: Fed by Buffer.Write (or any host) in stream order.
// Notes: Malformed input is consumed silently; decoding never fails.

package term

import "strings"

// State identifies the decoder's current position in the stream.
type State int

const (
	StateGround State = iota
	StateEscape
	StateCSI
	StateOSCStart
	StateOSC
)

// maxCSIParam is the saturation bound for CSI parameter accumulation.
// Large enough for any legitimate parameter, small enough that later
// arithmetic on a saturated value cannot overflow.
const maxCSIParam = 1<<30 - 1

// Parser decodes a stream of runes into styled cells.
//
// Parse consumes exactly one rune per call. Ordinary printable text
// yields a Cell styled with the current SGR state; bytes belonging to
// escape/control sequences yield nothing. The current style is plain
// single-owner state carried across calls.
//
// Characters must arrive in the exact order the source produced them:
// the in-progress CSI parameters and the current style are strictly
// sequential, so reordering corrupts decoded output.
type Parser struct {
	state        State
	params       []int
	currentParam int
	// csiPrivate is set when the sequence carries a private marker,
	// sub-parameter or intermediate byte; such sequences are consumed
	// whole and never dispatched.
	csiPrivate bool

	fg   Color
	bg   Color
	attr Attribute

	defaultFG Color
	defaultBG Color
}

// ParserOption configures a Parser at construction time.
type ParserOption func(*Parser)

// WithDefaultColors sets the colors restored by SGR 0/39/49.
func WithDefaultColors(fg, bg Color) ParserOption {
	return func(p *Parser) {
		p.defaultFG = fg
		p.defaultBG = bg
	}
}

// NewParser creates a decoder in the Ground state with default style.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		state:     StateGround,
		params:    make([]int, 0, 16),
		defaultFG: DefaultFG,
		defaultBG: DefaultBG,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.fg = p.defaultFG
	p.bg = p.defaultBG
	return p
}

// Parse consumes one rune. The returned bool reports whether a Cell was
// emitted. Control characters other than ESC are swallowed here; \n, \r
// and \t are the caller's responsibility and should not reach the
// decoder (they are swallowed like any other control character if they
// do).
func (p *Parser) Parse(r rune) (Cell, bool) {
	switch p.state {
	case StateGround:
		switch {
		case r == '\x1b':
			p.state = StateEscape
		case r < ' ' || r == '\x7f':
			// Non-printable control character: no cell.
		default:
			return p.styledCell(r), true
		}
	case StateEscape:
		switch r {
		case '[':
			p.state = StateCSI
			p.params = p.params[:0]
			p.currentParam = 0
			p.csiPrivate = false
		case ']':
			p.state = StateOSCStart
		default:
			// Aborted or unsupported sequence; not an error.
			p.state = StateGround
		}
	case StateCSI:
		switch {
		case r >= '0' && r <= '9':
			d := int(r - '0')
			if p.currentParam > (maxCSIParam-d)/10 {
				p.currentParam = maxCSIParam
			} else {
				p.currentParam = p.currentParam*10 + d
			}
		case r == ';':
			p.params = append(p.params, p.currentParam)
			p.currentParam = 0
		case r == ':' || (r >= '<' && r <= '?'):
			// Private markers (as in CSI ? 25 l) and sub-parameter
			// separators are sequence content, not final bytes. The
			// sequence stays open and is discarded whole at its final.
			p.csiPrivate = true
		case r >= ' ' && r <= '/':
			// Intermediate bytes preceding the final byte.
			p.csiPrivate = true
		default:
			// Final byte: flush the in-progress parameter and dispatch.
			// Only a plain 'm' is semantically handled; every other
			// final, and anything carrying private/intermediate bytes,
			// is accepted and ignored.
			p.params = append(p.params, p.currentParam)
			if r == 'm' && !p.csiPrivate {
				p.applySGR(p.params)
			}
			p.currentParam = 0
			p.csiPrivate = false
			p.state = StateGround
		}
	case StateOSCStart:
		if isOSCTerminator(r) {
			p.state = StateGround
		} else {
			p.state = StateOSC
		}
	case StateOSC:
		if isOSCTerminator(r) {
			p.state = StateGround
		}
		// Payload bytes are discarded; nothing is retained.
	}
	return Cell{}, false
}

// isOSCTerminator reports whether r ends an OSC sequence: BEL, or the
// backslash that closes a two-byte ST (ESC \).
func isOSCTerminator(r rune) bool {
	return r == '\x07' || r == '\\'
}

// Style returns the current style applied to subsequently emitted cells.
func (p *Parser) Style() (fg, bg Color, attr Attribute) {
	return p.fg, p.bg, p.attr
}

// styledCell builds a cell carrying the current style.
func (p *Parser) styledCell(r rune) Cell {
	return Cell{Rune: r, FG: p.fg, BG: p.bg, Attr: p.attr}
}

// Strip decodes s and returns only its printable text. Newlines and
// tabs pass through unchanged, mirroring Buffer.Write; escape sequences
// and other control characters are removed.
func Strip(s string) string {
	p := NewParser()
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\n', '\t':
			sb.WriteRune(r)
		case '\r':
			// Dropped: there is no column to return to in a flat string.
		default:
			if cell, ok := p.Parse(r); ok {
				sb.WriteRune(cell.Rune)
			}
		}
	}
	return sb.String()
}

// Reset returns the decoder to its initial state: Ground, no pending
// parameters, default colors, no attributes.
func (p *Parser) Reset() {
	p.state = StateGround
	p.params = p.params[:0]
	p.currentParam = 0
	p.csiPrivate = false
	p.fg = p.defaultFG
	p.bg = p.defaultBG
	p.attr = 0
}
