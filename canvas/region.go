package canvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region represents a rectangular area of the screen
// All coordinates are relative to the region's origin
type Region struct {
	screen tcell.Screen
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		screen: r.screen,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if r.screen == nil || x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill fills entire region with blanks in style
func (r Region) Fill(style tcell.Style) {
	r.FillRune(' ', style)
}

// FillRune fills entire region with ch
func (r Region) FillRune(ch rune, style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ch, style)
		}
	}
}

// Text renders text at position, truncates at region edge; returns columns used
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+col+cw > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, style)
		}
		col += cw
	}
	return col
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	s = Truncate(s, r.W)
	x := (r.W - runewidth.StringWidth(s)) / 2
	r.Text(x, y, s, style)
}

// Empty reports whether the region has no cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Truncate shortens s to at most maxW columns, marking the cut with …
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	return runewidth.Truncate(s, maxW, "…")
}
