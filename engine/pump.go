package engine

// FramePump is the registration surface between the engine and the
// host's frame loop. Play registers the per-frame callback through
// Start; Pause, Reset and completion deregister it through Stop.
// Implementations must guarantee the callback is never invoked after
// Stop returns
type FramePump interface {
	Start(fn func())
	Stop()
}

// LoopPump is a FramePump for cooperative hosts that own their frame
// loop: the host calls Fire once per frame and the registered callback
// runs inline. It carries no synchronization; the engine and its host
// share one goroutine by contract
type LoopPump struct {
	fn func()
}

// Start registers the callback, replacing any previous registration
func (p *LoopPump) Start(fn func()) {
	p.fn = fn
}

// Stop deregisters the callback
func (p *LoopPump) Stop() {
	p.fn = nil
}

// Fire invokes the registered callback once, if any. Safe to call
// from inside the callback itself
func (p *LoopPump) Fire() {
	if fn := p.fn; fn != nil {
		fn()
	}
}
