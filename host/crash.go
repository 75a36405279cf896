package host

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// HandleCrash restores the terminal and prints the panic value with the
// stack trace, then exits. A nil r is a no-op.
func HandleCrash(screen tcell.Screen, r any) {
	if r == nil {
		return
	}

	if screen != nil {
		screen.Fini()
	}
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine, routing a panic through HandleCrash
func Go(screen tcell.Screen, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(screen, r)
			}
		}()
		fn()
	}()
}
