// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/sgr.go
// Summary: SGR (Select Graphic Rendition) - text attributes and colors.
// Usage: Invoked by the decoder when a CSI sequence ends in 'm'.

package term

// applySGR processes an SGR parameter list, mutating the current style.
// Extended color codes 38/48 consume their sub-parameters so those are
// never reprocessed as independent codes. Unsupported codes (blink,
// reverse video, hidden) are accepted without effect.
func (p *Parser) applySGR(params []int) {
	i := 0
	if len(params) == 0 {
		params = []int{0}
	}
	for i < len(params) {
		switch code := params[i]; {
		case code == 0:
			p.resetStyle()
		case code == 1:
			p.attr |= AttrBold
		case code == 2:
			p.attr |= AttrDim
		case code == 3:
			p.attr |= AttrItalic
		case code == 4:
			p.attr |= AttrUnderline
		case code == 9:
			p.attr |= AttrStrikethrough
		case code == 22:
			p.attr &^= AttrBold | AttrDim
		case code == 23:
			p.attr &^= AttrItalic
		case code == 24:
			p.attr &^= AttrUnderline
		case code == 29:
			p.attr &^= AttrStrikethrough
		case code >= 30 && code <= 37:
			p.fg = Color{Mode: ColorModeStandard, Value: uint8(code - 30)}
		case code == 38: // Set extended foreground color
			color, consumed, ok := extendedColor(params[i+1:])
			i += consumed
			if ok {
				p.fg = color
			}
		case code == 39:
			p.fg = p.defaultFG
		case code >= 40 && code <= 47:
			p.bg = Color{Mode: ColorModeStandard, Value: uint8(code - 40)}
		case code == 48: // Set extended background color
			color, consumed, ok := extendedColor(params[i+1:])
			i += consumed
			if ok {
				p.bg = color
			}
		case code == 49:
			p.bg = p.defaultBG
		case code >= 90 && code <= 97: // Bright foreground
			p.fg = Color{Mode: ColorModeStandard, Value: uint8(code - 90 + 8)}
		case code >= 100 && code <= 107: // Bright background
			p.bg = Color{Mode: ColorModeStandard, Value: uint8(code - 100 + 8)}
		}
		i++
	}
}

// resetStyle restores default colors and clears all attributes (SGR 0).
func (p *Parser) resetStyle() {
	p.fg = p.defaultFG
	p.bg = p.defaultBG
	p.attr = 0
}

// extendedColor decodes the sub-parameters following a 38/48 code.
// rest starts at the entry after the 38/48 itself. Returns the resolved
// color and how many entries were consumed. A recognized introducer
// with missing channels consumes the whole remainder so the stubs are
// never reprocessed as independent codes; an unrecognized introducer
// consumes nothing and leaves the color unchanged.
func extendedColor(rest []int) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}
	switch rest[0] {
	case 5: // 256-color palette
		if len(rest) >= 2 {
			return color256(rest[1]), 2, true
		}
	case 2: // RGB true-color
		if len(rest) >= 4 {
			return Color{
				Mode: ColorModeRGB,
				R:    clampChannel(rest[1]),
				G:    clampChannel(rest[2]),
				B:    clampChannel(rest[3]),
			}, 4, true
		}
	default:
		return Color{}, 0, false
	}
	return Color{}, len(rest), false
}

// color256 resolves a 256-color palette index.
// 0-15 map to the basic/bright palette directly; 16-231 form a 6x6x6
// color cube; 232-255 form a grayscale ramp.
func color256(n int) Color {
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	switch {
	case n < 16:
		return Color{Mode: ColorModeStandard, Value: uint8(n)}
	case n < 232:
		idx := n - 16
		r := cubeChannel(idx / 36)
		g := cubeChannel((idx / 6) % 6)
		b := cubeChannel(idx % 6)
		return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
	default:
		gray := uint8((n-232)*10 + 8)
		return Color{Mode: ColorModeRGB, R: gray, G: gray, B: gray}
	}
}

// cubeChannel maps a 0-5 cube component to its channel value.
func cubeChannel(c int) uint8 {
	if c == 0 {
		return 0
	}
	return uint8(55 + 40*c)
}

// clampChannel clamps an RGB component to the uint8 range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
