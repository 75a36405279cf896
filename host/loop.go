package host

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilekit/canvas"
	"github.com/lixenwraith/tilekit/geom"
	"github.com/lixenwraith/tilekit/widget"
)

// DefaultFrame is the redraw interval
const DefaultFrame = 16 * time.Millisecond

// KeyHandler handles a key; returning false stops the loop
type KeyHandler func(ev *tcell.EventKey) bool

// Loop drives an App from a tcell screen on the calling goroutine
type Loop struct {
	screen tcell.Screen
	app    *widget.App
	canvas *canvas.Canvas
	tr     Translator

	// OnKey receives key events; nil quits on Esc and Ctrl-C
	OnKey KeyHandler
	// Frame is the redraw interval, DefaultFrame if zero
	Frame  time.Duration
	Theme  *canvas.Theme
	Logger *log.Logger

	dirty bool
}

// NewLoop creates a loop for an initialized screen
func NewLoop(screen tcell.Screen, app *widget.App) *Loop {
	return &Loop{
		screen: screen,
		app:    app,
		canvas: canvas.New(screen),
		Theme:  &canvas.DefaultTheme,
		Logger: log.New(io.Discard, "", 0),
		dirty:  true,
	}
}

// Canvas returns the drawing surface
func (l *Loop) Canvas() *canvas.Canvas {
	return l.canvas
}

// Pointer returns the last mouse position seen
func (l *Loop) Pointer() geom.Vec2 {
	return l.app.Pointer()
}

// Handle processes one tcell event; it returns false when the loop should stop
func (l *Loop) Handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case nil:
		return false
	case *tcell.EventKey:
		l.dirty = true
		if l.OnKey != nil {
			return l.OnKey(e)
		}
		return e.Key() != tcell.KeyEscape && e.Key() != tcell.KeyCtrlC
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventError:
		l.Logger.Printf("host: screen error: %v", e)
		return false
	}

	for _, we := range l.tr.Translate(ev) {
		l.app.ProcessEvent(we)
		l.dirty = true
	}
	return true
}

// Draw clears the screen, renders the app and shows the frame
func (l *Loop) Draw() {
	l.canvas.Clear(l.Theme.Bg)
	l.app.Render(l.canvas)
	l.canvas.Show()
	l.dirty = false
}

// Run enables the mouse and processes events until a handler stops the
// loop, the screen closes or ctx is done
func (l *Loop) Run(ctx context.Context) error {
	l.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	defer l.screen.DisableMouse()

	l.app.ProcessEvent(widget.WindowResize{Size: l.canvas.Bounds().Size()})

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	Go(l.screen, func() {
		for {
			ev := l.screen.PollEvent()
			select {
			case events <- ev:
			case <-quit:
				return
			}
			if ev == nil {
				return
			}
		}
	})

	frame := l.Frame
	if frame <= 0 {
		frame = DefaultFrame
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	l.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !l.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			if l.dirty {
				l.Draw()
			}
		}
	}
}
