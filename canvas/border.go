package canvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

func lineChars(line LineType) [6]rune {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	return boxChars[line]
}

// Box draws border around region edge
func (r Region) Box(line LineType, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	chars := lineChars(line)

	r.Cell(0, 0, chars[boxTL], style)
	r.Cell(r.W-1, 0, chars[boxTR], style)
	r.Cell(0, r.H-1, chars[boxBL], style)
	r.Cell(r.W-1, r.H-1, chars[boxBR], style)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], style)
		r.Cell(x, r.H-1, chars[boxH], style)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], style)
		r.Cell(r.W-1, y, chars[boxV], style)
	}
}

// HLine draws horizontal line across region width at row y
func (r Region) HLine(y int, line LineType, style tcell.Style) {
	if y < 0 || y >= r.H {
		return
	}
	ch := lineChars(line)[boxH]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, style)
	}
}

// VLine draws vertical line across region height at column x
func (r Region) VLine(x int, line LineType, style tcell.Style) {
	if x < 0 || x >= r.W {
		return
	}
	ch := lineChars(line)[boxV]
	for y := 0; y < r.H; y++ {
		r.Cell(x, y, ch, style)
	}
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, style tcell.Style) Region {
	r.Box(line, style)

	if title != "" && r.W > 4 {
		t := Truncate(title, r.W-4)
		x := (r.W - runewidth.StringWidth(t) - 2) / 2
		r.Text(x, 0, " "+t+" ", style.Bold(true))
	}

	return r.Inset(1)
}
