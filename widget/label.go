package widget

import (
	"fmt"

	"github.com/lixenwraith/tilekit/canvas"
)

// Label is a bordered panel showing a title and a few lines of text
type Label struct {
	Base
	Title string
	Lines []string
	Theme *canvas.Theme

	// ShowSize centers the assigned cell size on the last free row
	ShowSize bool
	// Focused draws the border in the focus style
	Focused bool
}

// NewLabel creates a label using the default theme
func NewLabel(title string, lines ...string) *Label {
	return &Label{Title: title, Lines: lines, Theme: &canvas.DefaultTheme}
}

func (l *Label) Render(c *canvas.Canvas) {
	r := c.RegionOf(l.Rect)
	if r.Empty() {
		return
	}
	th := l.Theme
	if th == nil {
		th = &canvas.DefaultTheme
	}

	r.Fill(th.Bg)
	border := th.Border
	if l.Focused {
		border = th.Focus
	}
	inner := r.Card(l.Title, canvas.LineRounded, border)

	y := 0
	for _, line := range l.Lines {
		if y >= inner.H {
			return
		}
		inner.Text(0, y, canvas.Truncate(line, inner.W), th.Text)
		y++
	}
	if l.ShowSize && y < inner.H {
		inner.TextCenter(inner.H-1, fmt.Sprintf("%dx%d", r.W, r.H), th.Dim)
	}
}
