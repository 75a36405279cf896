package canvas

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines semantic styles for tilekit widgets
type Theme struct {
	Bg        tcell.Style
	Text      tcell.Style
	Dim       tcell.Style
	Border    tcell.Style
	Focus     tcell.Style
	Separator tcell.Style
	Active    tcell.Style // separator being dragged
}

var (
	colorBg     = tcell.NewRGBColor(20, 20, 30)
	colorFg     = tcell.NewRGBColor(200, 200, 200)
	colorBorder = tcell.NewRGBColor(60, 80, 100)
	colorFocus  = tcell.NewRGBColor(100, 200, 220)
)

// DefaultTheme provides reasonable defaults
var DefaultTheme = NewTheme(colorBg, colorFg, colorBorder, colorFocus)

// NewTheme derives a full theme from four base colors, separator and drag
// highlight are Lab blends of them
func NewTheme(bg, fg, border, focus tcell.Color) Theme {
	base := tcell.StyleDefault.Background(bg)
	sep := Blend(bg, border, 0.5)
	return Theme{
		Bg:        base.Foreground(fg),
		Text:      base.Foreground(fg),
		Dim:       base.Foreground(Blend(bg, fg, 0.45)),
		Border:    base.Foreground(border),
		Focus:     base.Foreground(focus),
		Separator: tcell.StyleDefault.Background(sep).Foreground(border),
		Active:    tcell.StyleDefault.Background(Blend(sep, focus, 0.6)).Foreground(focus),
	}
}

// Blend mixes a toward b by t in [0,1]; colors without an RGB value
// (terminal defaults) fall back to the other operand
func Blend(a, b tcell.Color, t float64) tcell.Color {
	ca, okA := toColorful(a)
	cb, okB := toColorful(b)
	switch {
	case !okA && !okB:
		return a
	case !okA:
		return b
	case !okB:
		return a
	}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
