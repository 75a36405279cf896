// Package host connects a widget.App to a tcell screen: it translates
// terminal input into widget events, runs the frame loop and restores the
// terminal on a crash
package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/widget"
)

const trackedButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// Translator turns tcell's button-state snapshots into press, move and
// release edges by diffing against the previous snapshot
type Translator struct {
	buttons tcell.ButtonMask
	pos     geom.Vec2
	seen    bool
}

// Translate converts one tcell event; unrelated events yield nothing
func (t *Translator) Translate(ev tcell.Event) []widget.Event {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		return t.mouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []widget.Event{widget.WindowResize{Size: geom.V2(float64(w), float64(h))}}
	}
	return nil
}

func (t *Translator) mouse(ev *tcell.EventMouse) []widget.Event {
	x, y := ev.Position()
	pos := geom.V2(float64(x), float64(y))
	buttons := ev.Buttons() & trackedButtons
	mods := modifiers(ev.Modifiers())

	var out []widget.Event
	if t.seen && pos != t.pos {
		out = append(out, widget.MouseMove{Pos: pos, Prev: t.pos})
	}

	prev := t.buttons
	for _, b := range []tcell.ButtonMask{tcell.ButtonPrimary, tcell.ButtonSecondary, tcell.ButtonMiddle} {
		if prev&b != 0 && buttons&b == 0 {
			out = append(out, widget.MouseRelease{Pos: pos, Button: button(b)})
		}
	}
	for _, b := range []tcell.ButtonMask{tcell.ButtonPrimary, tcell.ButtonSecondary, tcell.ButtonMiddle} {
		if buttons&b != 0 && prev&b == 0 {
			out = append(out, widget.MousePress{Pos: pos, Button: button(b), Mods: mods})
		}
	}

	t.buttons = buttons
	t.pos = pos
	t.seen = true
	return out
}

// Buttons returns the currently held buttons
func (t *Translator) Buttons() tcell.ButtonMask {
	return t.buttons
}

func button(b tcell.ButtonMask) widget.MouseButton {
	switch b {
	case tcell.ButtonPrimary:
		return widget.MouseBtnLeft
	case tcell.ButtonSecondary:
		return widget.MouseBtnRight
	case tcell.ButtonMiddle:
		return widget.MouseBtnMiddle
	}
	return widget.MouseBtnNone
}

func modifiers(m tcell.ModMask) widget.Modifier {
	var out widget.Modifier
	if m&tcell.ModShift != 0 {
		out |= widget.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= widget.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= widget.ModCtrl
	}
	return out
}
