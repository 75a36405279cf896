// Package feedback plays short synthesized cues for grid gestures
package feedback

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tilekit/grid2"
)

// Cue identifies a gesture sound
type Cue int

const (
	CueGrab Cue = iota
	CueDrop
	CueFlip
	CueSwap
	CueSplit
	CueClose
)

type cueShape struct {
	from, to float64
	length   time.Duration
	wave     Wave
	level    float64
}

var cues = [...]cueShape{
	CueGrab:  {from: 520, to: 660, length: 45 * time.Millisecond, wave: WaveSine, level: 0.5},
	CueDrop:  {from: 660, to: 440, length: 60 * time.Millisecond, wave: WaveSine, level: 0.5},
	CueFlip:  {from: 330, to: 495, length: 70 * time.Millisecond, wave: WaveSquare, level: 0.2},
	CueSwap:  {from: 300, to: 900, length: 90 * time.Millisecond, wave: WaveSaw, level: 0.2},
	CueSplit: {from: 880, to: 880, length: 50 * time.Millisecond, wave: WaveSine, level: 0.4},
	CueClose: {from: 220, to: 160, length: 80 * time.Millisecond, wave: WaveSquare, level: 0.2},
}

// Duration returns how long the cue plays
func (c Cue) Duration() time.Duration {
	return cues[c].length
}

// NewCue builds a one-shot streamer for c scaled by level
func NewCue(c Cue, rate beep.SampleRate, level float64) beep.Streamer {
	shape := cues[c]
	osc := newTone(shape.from, shape.to, shape.length, shape.wave, rate)
	shaped := newFade(osc, shape.length, 5*time.Millisecond, shape.length/2, rate)
	return gain(shaped, shape.level*level)
}

// CueFor maps a grid notice to its cue
func CueFor(n grid2.Notice) (Cue, bool) {
	switch n.Kind {
	case grid2.NoticeResizeStart:
		return CueGrab, true
	case grid2.NoticeResizeEnd:
		return CueDrop, true
	case grid2.NoticeFlip:
		return CueFlip, true
	case grid2.NoticeSwap:
		return CueSwap, true
	case grid2.NoticeInsert:
		return CueSplit, true
	case grid2.NoticeRemove:
		return CueClose, true
	}
	return 0, false
}
