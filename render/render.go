// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/render.go
// Summary: Translates buffer cells into tcell styles and paints the
// visible viewport onto a tcell screen.
// Notes: Pure translation; the buffer stays the single source of truth.

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gridterm/gridterm/term"
)

// ColorOf maps a cell color to a tcell color. Default-mode colors fall
// back to the terminal's own defaults.
func ColorOf(c term.Color) tcell.Color {
	switch c.Mode {
	case term.ColorModeStandard:
		return tcell.PaletteColor(int(c.Value))
	case term.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// StyleOf maps a cell's colors and attributes to a tcell style.
func StyleOf(cell term.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(ColorOf(cell.FG)).
		Background(ColorOf(cell.BG))

	if cell.Attr&term.AttrBold != 0 {
		style = style.Bold(true)
	}
	if cell.Attr&term.AttrDim != 0 {
		style = style.Dim(true)
	}
	if cell.Attr&term.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if cell.Attr&term.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if cell.Attr&term.AttrStrikethrough != 0 {
		style = style.StrikeThrough(true)
	}
	return style
}

// Draw paints the buffer's visible lines onto the screen starting at
// the top-left corner, blanking the remainder of the viewport, and
// positions the hardware cursor when it is in view. The caller shows
// the screen.
func Draw(screen tcell.Screen, buf *term.Buffer) {
	width := buf.Width()
	height := buf.Height()
	visible := buf.Visible()

	blank := tcell.StyleDefault
	for y := 0; y < height; y++ {
		var line *term.Line
		if y < len(visible) {
			line = visible[y]
		}
		for x := 0; x < width; x++ {
			if line != nil && x < line.Len() {
				cell := line.CellAt(x)
				screen.SetContent(x, y, cell.Rune, nil, StyleOf(cell))
			} else {
				screen.SetContent(x, y, ' ', nil, blank)
			}
		}
	}

	if row, col, ok := buf.VisibleCursor(); ok {
		if col >= width {
			col = width - 1
		}
		screen.ShowCursor(col, row)
	} else {
		screen.HideCursor()
	}
}
