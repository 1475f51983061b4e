// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/cell.go
// Summary: Cell, color and attribute types for the emulation core.
// Usage: Consumed by the decoder when emitting styled cells.
// Notes: Keeps the data model isolated from rendering.

package term

// Attribute defines a set of text modifier flags.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrStrikethrough
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrDim != 0 {
		parts = append(parts, "dim")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrStrikethrough != 0 {
		parts = append(parts, "strikethrough")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The 16 basic/bright ANSI palette entries
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in one of several modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Palette index for Standard mode (0-15)
	R, G, B uint8 // Channel values for RGB mode
}

// Cell represents a single character cell of terminal content.
// A Cell is a value snapshot: the style captured at write time never
// changes when the decoder's current style changes later.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Attr Attribute
}

// Predefined default colors for convenience.
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)

// blankCell is the fill used when lines grow past their current length.
func blankCell() Cell {
	return Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
}
