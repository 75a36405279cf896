package widget

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tilekit/geom"
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "left"
	case MouseBtnMiddle:
		return "middle"
	case MouseBtnRight:
		return "right"
	default:
		return "none"
	}
}

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// String joins the set modifier names with '+'
func (m Modifier) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// Event is one of MousePress, MouseMove, MouseRelease, WindowResize
type Event interface {
	isEvent()
}

// MousePress carries position, button identity and modifier state
type MousePress struct {
	Pos    geom.Vec2
	Button MouseButton
	Mods   Modifier
}

// MouseMove carries current and previous pointer position
type MouseMove struct {
	Pos  geom.Vec2
	Prev geom.Vec2
}

// MouseRelease ends a press; Pos is the last known pointer position
type MouseRelease struct {
	Pos    geom.Vec2
	Button MouseButton
}

// WindowResize announces a new window size
type WindowResize struct {
	Size geom.Vec2
}

func (MousePress) isEvent()   {}
func (MouseMove) isEvent()    {}
func (MouseRelease) isEvent() {}
func (WindowResize) isEvent() {}

// Trigger is a button plus exact modifier combination
type Trigger struct {
	Button MouseButton
	Mods   Modifier
}

// Matches reports whether a press uses exactly this button and modifiers
func (t Trigger) Matches(ev MousePress) bool {
	return t.Button == ev.Button && t.Mods == ev.Mods
}

// String formats as "ctrl+shift+right", the inverse of ParseTrigger
func (t Trigger) String() string {
	if t.Mods == ModNone {
		return t.Button.String()
	}
	return t.Mods.String() + "+" + t.Button.String()
}

// ParseTrigger parses "button" or "mod+...+button", case-insensitive
func ParseTrigger(s string) (Trigger, error) {
	var t Trigger
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		last := i == len(parts)-1
		switch {
		case p == "shift" && !last:
			t.Mods |= ModShift
		case p == "alt" && !last:
			t.Mods |= ModAlt
		case (p == "ctrl" || p == "control") && !last:
			t.Mods |= ModCtrl
		case p == "left" && last:
			t.Button = MouseBtnLeft
		case p == "middle" && last:
			t.Button = MouseBtnMiddle
		case p == "right" && last:
			t.Button = MouseBtnRight
		default:
			return Trigger{}, fmt.Errorf("invalid trigger %q: unexpected %q", s, p)
		}
	}
	return t, nil
}
