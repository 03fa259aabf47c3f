// Package motion resolves the token-level description of a step into
// angles and interpolates prop poses along a beat. Resolution is pure:
// unknown tokens degrade to documented defaults and are reported as
// warning values instead of failing playback.
package motion

import (
	"fmt"

	"github.com/lixenwraith/kinloom/notation"
)

// PropState is the pose of one prop at a point in time. X and Y are
// the unit-circle projection of CenterPathAngle
type PropState struct {
	CenterPathAngle    float64
	StaffRotationAngle float64
	X                  float64
	Y                  float64
}

// Resolved holds one hand's boundary angles for a step after token
// resolution, before interpolation
type Resolved struct {
	StartCenter float64
	EndCenter   float64
	StartStaff  float64
	TargetStaff float64
	Motion      notation.MotionType
}

// WarningKind classifies a resolution diagnostic
type WarningKind int

const (
	// WarnUnknownToken means a token fell outside the vocabulary and a
	// documented default was used in its place
	WarnUnknownToken WarningKind = iota
	// WarnMotionFallback means an unrecognized motion type was resolved
	// with static behavior
	WarnMotionFallback
)

// Warning is one diagnostic emitted during resolution. The struct is
// comparable so callers can deduplicate repeats across frames
type Warning struct {
	Kind  WarningKind
	Field string
	Token string
}

func (w Warning) String() string {
	if w.Kind == WarnMotionFallback {
		return fmt.Sprintf("unknown %s %q resolved as static", w.Field, w.Token)
	}
	return fmt.Sprintf("unknown %s %q resolved to default", w.Field, w.Token)
}
