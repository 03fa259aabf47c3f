// Package engine owns playback: it advances a beat timeline against a
// clock, recomputes prop poses through the motion package, and reports
// beat crossings, loops and completion to its host.
//
// An Engine is single-threaded by contract. All computation happens
// inside control calls and the per-frame callback; hosts that touch an
// engine from more than one goroutine must serialize every call
// themselves.
package engine

import (
	"fmt"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/kinloom/motion"
	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/parameter"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/status"
	"github.com/lixenwraith/kinloom/vmath"
)

// PlayState is the engine's playback mode
type PlayState int

const (
	StateStopped PlayState = iota
	StatePlaying
	StatePaused
)

// String returns a display label for the state
func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Metadata describes the loaded sequence for display
type Metadata struct {
	Word       string
	Author     string
	TotalBeats int
	Grid       notation.GridMode
}

// Engine owns the playback state of one sequence and computes prop
// poses on demand. Derived state is recomputed from the normalized
// sequence on every mutation, never cached across beats
type Engine struct {
	clock Clock
	pump  FramePump

	seq *sequence.Sequence

	state       PlayState
	currentBeat float64
	speed       float64
	loop        bool
	completed   bool

	// epoch counts callback registrations; ticks carrying a stale
	// epoch are inert
	epoch    uint64
	lastTick time.Time

	blue motion.PropState
	red  motion.PropState

	events eventRing

	registry        *status.Registry
	statTicks       *atomic.Int64
	statLoops       *atomic.Int64
	statCompletions *atomic.Int64
	statWarnings    *atomic.Int64
	statMisuse      *atomic.Int64
	statBeat        *status.AtomicFloat
	statLastWarning *status.AtomicString

	// seenWarnings deduplicates per-frame resolution diagnostics so a
	// bad token logs once instead of once per tick
	seenWarnings map[motion.Warning]struct{}
}

// New creates an engine with no sequence loaded. Nil arguments fall
// back to a system clock, an inline loop pump and a fresh registry
func New(clock Clock, pump FramePump, registry *status.Registry) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	if pump == nil {
		pump = &LoopPump{}
	}
	if registry == nil {
		registry = status.NewRegistry()
	}

	e := &Engine{
		clock:        clock,
		pump:         pump,
		speed:        parameter.DefaultPlaybackSpeed,
		registry:     registry,
		seenWarnings: make(map[motion.Warning]struct{}),
	}
	e.statTicks = registry.Ints.Get("engine.ticks")
	e.statLoops = registry.Ints.Get("engine.loops")
	e.statCompletions = registry.Ints.Get("engine.completions")
	e.statWarnings = registry.Ints.Get("engine.warnings")
	e.statMisuse = registry.Ints.Get("engine.misuse")
	e.statBeat = registry.Floats.Get("engine.beat")
	e.statLastWarning = registry.Strings.Get("engine.last_warning")

	e.refresh()
	return e
}

// Initialize parses a raw sequence document and loads it. Playback
// state is discarded whether or not parsing succeeds; on failure the
// engine is left empty with zero total beats
func (e *Engine) Initialize(doc []byte) error {
	e.clearPlayback()
	e.seq = nil

	seq, err := sequence.Parse(doc)
	if err != nil {
		e.refresh()
		return fmt.Errorf("initialize: %w", err)
	}
	e.seq = seq
	e.refresh()
	return nil
}

// Load installs an already-adapted sequence, resetting playback state
func (e *Engine) Load(seq *sequence.Sequence) {
	e.clearPlayback()
	e.seq = seq
	e.refresh()
}

// clearPlayback returns every piece of playback state to its initial
// value and invalidates outstanding callbacks
func (e *Engine) clearPlayback() {
	e.pump.Stop()
	e.state = StateStopped
	e.currentBeat = 0
	e.speed = parameter.DefaultPlaybackSpeed
	e.loop = false
	e.completed = false
	e.epoch++
	e.events = eventRing{}
	e.statBeat.Set(0)
	clear(e.seenWarnings)
}

// Play begins or resumes playback. A run that already reached the end
// restarts from beat zero. Calling Play with nothing loaded or while
// already playing is counted as misuse and ignored
func (e *Engine) Play() {
	if e.seq == nil || e.state == StatePlaying {
		e.statMisuse.Add(1)
		return
	}
	if e.state == StateStopped && e.currentBeat >= float64(e.seq.TotalBeats()) {
		e.currentBeat = 0
		e.refresh()
	}
	e.completed = false
	e.state = StatePlaying
	e.lastTick = e.clock.Now()
	e.epoch++
	epoch := e.epoch
	e.pump.Start(func() { e.tick(epoch) })
}

// Pause freezes playback at the current position and deregisters the
// frame callback. Pausing anything but active playback is misuse
func (e *Engine) Pause() {
	if e.state != StatePlaying {
		e.statMisuse.Add(1)
		return
	}
	e.state = StatePaused
	e.pump.Stop()
}

// Reset stops playback and rewinds to beat zero. Speed and loop
// settings survive a reset; Initialize is what clears them
func (e *Engine) Reset() {
	e.pump.Stop()
	e.state = StateStopped
	e.currentBeat = 0
	e.completed = false
	e.epoch++
	e.statBeat.Set(0)
	e.refresh()
}

// Scrub seeks to an absolute beat position, clamped to the timeline,
// in any playback state. Prop states are recomputed synchronously
// before Scrub returns, so the next tick or query observes the new
// position, never a stale one. Scrubbing re-arms completion
func (e *Engine) Scrub(beat float64) {
	if e.seq == nil {
		e.statMisuse.Add(1)
		return
	}
	e.currentBeat = vmath.Clamp(beat, 0, float64(e.seq.TotalBeats()))
	e.completed = false
	if e.state == StatePlaying {
		// Wall time spent before the seek must not advance the new
		// position on the next tick
		e.lastTick = e.clock.Now()
	}
	e.statBeat.Set(e.currentBeat)
	e.refresh()
}

// SetSpeed sets the playback speed multiplier. Values below the floor
// clamp up so playback can never stall or run backward
func (e *Engine) SetSpeed(speed float64) {
	if speed < parameter.MinPlaybackSpeed {
		speed = parameter.MinPlaybackSpeed
	}
	e.speed = speed
}

// SetLoop toggles wrap-around playback
func (e *Engine) SetLoop(enabled bool) {
	e.loop = enabled
}

// tick advances the timeline by scaled wall-clock time. Ticks carrying
// a stale epoch belong to a superseded registration and do nothing
func (e *Engine) tick(epoch uint64) {
	if epoch != e.epoch || e.state != StatePlaying || e.seq == nil {
		return
	}

	now := e.clock.Now()
	dt := now.Sub(e.lastTick).Seconds()
	e.lastTick = now
	if dt < 0 {
		dt = 0
	}

	speed := e.speed
	if speed < parameter.MinPlaybackSpeed {
		speed = parameter.MinPlaybackSpeed
	}

	total := float64(e.seq.TotalBeats())
	if total <= 0 {
		return
	}

	prev := e.currentBeat
	next := prev + dt*speed

	switch {
	case next < total:
		e.emitCrossings(prev, next)
		e.currentBeat = next

	case e.loop:
		e.emitCrossings(prev, total)
		e.events.push(Event{Type: EventLooped})
		e.statLoops.Add(1)
		wrapped := math.Mod(next, total)
		e.emitCrossings(0, wrapped)
		e.currentBeat = wrapped

	default:
		e.emitCrossings(prev, total)
		e.currentBeat = total
		e.state = StateStopped
		if !e.completed {
			e.completed = true
			e.events.push(Event{Type: EventCompleted, Beat: total})
			e.statCompletions.Add(1)
		}
		e.pump.Stop()
	}

	e.statTicks.Add(1)
	e.statBeat.Set(e.currentBeat)
	e.refresh()
}

// emitCrossings reports every integer beat boundary in (from, to],
// capped after a long host stall
func (e *Engine) emitCrossings(from, to float64) {
	count := 0
	for k := math.Floor(from) + 1; k <= to; k++ {
		e.events.push(Event{Type: EventBeatCrossed, Beat: k})
		count++
		if count >= parameter.MaxBeatCrossingsPerTick {
			return
		}
	}
}

// refresh recomputes both prop states for the current beat and
// surfaces any resolution warnings
func (e *Engine) refresh() {
	if e.seq == nil {
		e.blue = emptyState()
		e.red = emptyState()
		return
	}

	blue, red, warns := motion.SampleBoth(e.seq, e.currentBeat)
	e.blue, e.red = blue, red

	for _, w := range warns {
		if _, seen := e.seenWarnings[w]; seen {
			continue
		}
		e.seenWarnings[w] = struct{}{}
		e.statWarnings.Add(1)
		e.statLastWarning.Store(w.String())
		log.Printf("motion warning: %s", w)
	}
}

func emptyState() motion.PropState {
	x, y := vmath.PolarXY(0)
	return motion.PropState{X: x, Y: y}
}

// --- Queries ---

// PropState returns the current pose of one prop as a copy
func (e *Engine) PropState(hand notation.Hand) motion.PropState {
	if hand == notation.HandRed {
		return e.red
	}
	return e.blue
}

// CurrentBeat returns the playback position in beats
func (e *Engine) CurrentBeat() float64 {
	return e.currentBeat
}

// State returns the playback state
func (e *Engine) State() PlayState {
	return e.state
}

// Speed returns the playback speed multiplier
func (e *Engine) Speed() float64 {
	return e.speed
}

// Loop reports whether wrap-around playback is enabled
func (e *Engine) Loop() bool {
	return e.loop
}

// TotalBeats returns the duration of the loaded sequence in beats,
// zero when nothing is loaded
func (e *Engine) TotalBeats() int {
	if e.seq == nil {
		return 0
	}
	return e.seq.TotalBeats()
}

// Metadata returns display information about the loaded sequence
func (e *Engine) Metadata() Metadata {
	if e.seq == nil {
		return Metadata{}
	}
	return Metadata{
		Word:       e.seq.Word,
		Author:     e.seq.Author,
		TotalBeats: e.seq.TotalBeats(),
		Grid:       e.seq.Grid,
	}
}

// Steps returns a copy of the normalized steps for inspection; the
// engine's own copy cannot be mutated through it
func (e *Engine) Steps() []sequence.MotionStep {
	if e.seq == nil {
		return nil
	}
	return append([]sequence.MotionStep(nil), e.seq.Steps...)
}

// PollEvents drains pending playback events in FIFO order
func (e *Engine) PollEvents() []Event {
	return e.events.drain()
}

// Registry exposes the metrics registry the engine writes to
func (e *Engine) Registry() *status.Registry {
	return e.registry
}
