package engine

import (
	"sync"
	"time"
)

// MockClock is a hand-driven Clock for deterministic playback tests.
// Time only moves when the test says so.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock creates a mock clock frozen at startTime
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{now: startTime}
}

// Now returns the mocked time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps the clock to an absolute time
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
