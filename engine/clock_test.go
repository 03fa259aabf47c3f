package engine

import (
	"testing"
	"time"
)

func TestMockClockAdvance(t *testing.T) {
	start := time.Unix(100, 0)
	clock := NewMockClock(start)

	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("Now = %v, want %v", got, start)
	}

	clock.Advance(1500 * time.Millisecond)
	want := start.Add(1500 * time.Millisecond)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("after Advance: Now = %v, want %v", got, want)
	}
}

func TestMockClockSetTime(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	want := time.Unix(42, 0)
	clock.SetTime(want)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("after SetTime: Now = %v, want %v", got, want)
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	clock := SystemClock{}
	first := clock.Now()
	second := clock.Now()
	if second.Before(first) {
		t.Errorf("time went backward: %v then %v", first, second)
	}
}
