package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gridterm/gridterm/term"
)

func TestColorOfDefault(t *testing.T) {
	if got := ColorOf(term.Color{}); got != tcell.ColorDefault {
		t.Errorf("default mode should map to tcell.ColorDefault, got %v", got)
	}
}

func TestColorOfPalette(t *testing.T) {
	c := term.Color{Mode: term.ColorModeStandard, Value: 1}
	if got := ColorOf(c); got != tcell.PaletteColor(1) {
		t.Errorf("palette 1 mapped to %v", got)
	}
	c = term.Color{Mode: term.ColorModeStandard, Value: 15}
	if got := ColorOf(c); got != tcell.PaletteColor(15) {
		t.Errorf("palette 15 mapped to %v", got)
	}
}

func TestColorOfRGB(t *testing.T) {
	c := term.Color{Mode: term.ColorModeRGB, R: 255, G: 128, B: 64}
	got := ColorOf(c)
	r, g, b := got.RGB()
	if r != 255 || g != 128 || b != 64 {
		t.Errorf("RGB color mapped to (%d,%d,%d)", r, g, b)
	}
}

func TestStyleOfAttributes(t *testing.T) {
	cell := term.Cell{
		Rune: 'x',
		Attr: term.AttrBold | term.AttrUnderline,
	}
	style := StyleOf(cell)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold not carried into tcell style")
	}
	if attrs&tcell.AttrUnderline == 0 {
		t.Error("underline not carried into tcell style")
	}
	if attrs&tcell.AttrItalic != 0 {
		t.Error("italic set without being requested")
	}
}

func TestStyleOfColors(t *testing.T) {
	cell := term.Cell{
		Rune: 'x',
		FG:   term.Color{Mode: term.ColorModeStandard, Value: 2},
		BG:   term.Color{Mode: term.ColorModeRGB, R: 1, G: 2, B: 3},
	}
	fg, bg, _ := StyleOf(cell).Decompose()
	if fg != tcell.PaletteColor(2) {
		t.Errorf("foreground mapped to %v", fg)
	}
	if bg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("background mapped to %v", bg)
	}
}

func TestDrawPaintsViewport(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 3)

	buf := term.NewBuffer(term.Config{Width: 10, Height: 3, MaxScrollback: 10})
	buf.Write("\x1b[31mhi")
	Draw(screen, buf)

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != 'h' {
		t.Errorf("expected 'h' at origin, got %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.PaletteColor(1) {
		t.Errorf("expected red foreground, got %v", fg)
	}

	// Beyond the line content the viewport is blanked.
	mainc, _, _, _ = screen.GetContent(5, 0)
	if mainc != ' ' {
		t.Errorf("expected blank cell, got %q", mainc)
	}
}

func TestDrawHidesCursorWhenScrolledBack(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	buf := term.NewBuffer(term.Config{Width: 10, Height: 2, MaxScrollback: 10})
	buf.Write("a\nb\nc\nd")
	buf.ScrollToTop()
	Draw(screen, buf) // must not panic; cursor row is out of view
}
