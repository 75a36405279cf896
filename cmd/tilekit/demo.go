package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilekit/config"
	"github.com/lixenwraith/tilekit/grid2"
	"github.com/lixenwraith/tilekit/host"
	"github.com/lixenwraith/tilekit/widget"
)

type demo struct {
	cfg    config.Config
	grid   *grid2.Grid
	loop   *host.Loop
	logger *log.Logger
	next   int
}

// bindPanels gives every slot a label named after its tag
func (d *demo) bindPanels() {
	for _, s := range d.grid.Slots() {
		tag := d.grid.Tag(s)
		if d.grid.Content(s) == nil {
			d.grid.SetContent(s, newPanel(tag))
		}
		d.next = max(d.next, tag+1)
	}
}

func newPanel(tag int) *widget.Label {
	l := widget.NewLabel(fmt.Sprintf("panel %d", tag), "h/v split  x close", "s save  r reset  q quit")
	l.ShowSize = true
	return l
}

// hovered returns the slot under the pointer
func (d *demo) hovered() grid2.NodeID {
	if id, ok := d.grid.SlotAt(d.loop.Pointer()); ok {
		return id
	}
	return grid2.NoNode
}

func (d *demo) key(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'h', 'v':
		o := grid2.Horizontal
		if ev.Rune() == 'v' {
			o = grid2.Vertical
		}
		at := d.hovered()
		if d.grid.Empty() {
			at = grid2.NoNode
		}
		tag := d.next
		d.next++
		d.grid.Insert(newPanel(tag), tag, at, o)
	case 'x':
		if at := d.hovered(); at != grid2.NoNode {
			d.grid.Remove(at)
		}
	case 's':
		d.save()
	case 'r':
		if err := grid2.Parse(d.cfg.Layout.Initial, d.grid); err != nil {
			d.logger.Printf("reset: %v", err)
		}
		d.bindPanels()
	}
	d.grid.Layout()
	return true
}

func (d *demo) save() {
	if d.cfg.Layout.File == "" {
		d.logger.Printf("save: no layout file configured")
		return
	}
	if err := config.SaveLayout(d.cfg.Layout.File, d.grid); err != nil {
		d.logger.Printf("save: %v", err)
		return
	}
	d.logger.Printf("saved layout to %s", d.cfg.Layout.File)
}
