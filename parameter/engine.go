package parameter

import "time"

// Playback Scheduling
const (
	// FrameUpdateInterval is the host frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultPlaybackSpeed is the multiplier applied to wall-clock time
	// when a sequence starts playing
	DefaultPlaybackSpeed = 1.0

	// MinPlaybackSpeed is the floor applied to the speed multiplier at
	// tick time so playback can never stall or run backward
	MinPlaybackSpeed = 0.01

	// MaxBeatCrossingsPerTick caps how many beat boundaries a single
	// tick may report after a long host stall
	MaxBeatCrossingsPerTick = 32
)

// Host Event Queue
const (
	// HostEventQueueSize is the fixed capacity of the playback event ring
	HostEventQueueSize = 64

	// HostEventBufferMask is the bitmask for fast modulo operations (64 - 1)
	HostEventBufferMask = 63
)

// Motion Resolution
const (
	// OrientationOverrideTolerance is the angular distance in radians a
	// declared end orientation must exceed before a static motion
	// rotates toward it instead of holding the start angle
	OrientationOverrideTolerance = 0.1
)
