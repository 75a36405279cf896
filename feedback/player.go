package feedback

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tilekit/grid2"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes cues into the speaker
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	level       float64
	initialized bool
}

// NewPlayer creates a player; volume is a base-2 exponent, 0 is unchanged
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer: &beep.Mixer{},
		level: math.Pow(2, volume),
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences pending cues
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues a cue; it is dropped when the speaker is not open
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewCue(c, sampleRate, p.level))
	speaker.Unlock()
}

// Observer returns a grid observer that plays the matching cue, chaining
// to next when not nil
func (p *Player) Observer(next grid2.Observer) grid2.Observer {
	return func(n grid2.Notice) {
		if c, ok := CueFor(n); ok {
			p.Play(c)
		}
		if next != nil {
			next(n)
		}
	}
}
