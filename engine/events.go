package engine

import "github.com/lixenwraith/kinloom/parameter"

// EventType classifies a playback event
type EventType int

const (
	// EventBeatCrossed fires once per integer beat boundary the
	// timeline advances across
	EventBeatCrossed EventType = iota
	// EventLooped fires when looping playback wraps back to beat zero
	EventLooped
	// EventCompleted fires exactly once when non-looping playback
	// reaches the end of the timeline
	EventCompleted
)

// String returns a short label for logs and status displays
func (t EventType) String() string {
	switch t {
	case EventBeatCrossed:
		return "beat"
	case EventLooped:
		return "loop"
	case EventCompleted:
		return "complete"
	}
	return "unknown"
}

// Event is one playback notification. Beat carries the boundary that
// was crossed, or the final beat for completions
type Event struct {
	Type EventType
	Beat float64
}

// eventRing is a fixed-capacity FIFO for playback events
// The engine is single-threaded by contract so slots need no
// synchronization. Overflow: oldest events overwritten when full
type eventRing struct {
	events [parameter.HostEventQueueSize]Event
	head   uint64
	tail   uint64
}

func (r *eventRing) push(ev Event) {
	r.events[r.tail&parameter.HostEventBufferMask] = ev
	r.tail++
	if r.tail-r.head > parameter.HostEventQueueSize {
		r.head = r.tail - parameter.HostEventQueueSize
	}
}

// drain returns all pending events in FIFO order and advances head
func (r *eventRing) drain() []Event {
	if r.tail == r.head {
		return nil
	}
	out := make([]Event, 0, r.tail-r.head)
	for i := r.head; i < r.tail; i++ {
		out = append(out, r.events[i&parameter.HostEventBufferMask])
	}
	r.head = r.tail
	return out
}
