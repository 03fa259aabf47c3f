package motion

import (
	"math"

	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/vmath"
)

// Sample computes one hand's pose at phase t within a step. t is
// clamped to [0, 1]. next carries the following step's attributes for
// the same hand and may be nil on the last step
func Sample(a sequence.MotionAttributes, next *sequence.MotionAttributes, t float64) (PropState, []Warning) {
	r, warns := Resolve(a, next)
	t = vmath.Clamp(t, 0, 1)

	center := vmath.LerpAngle(r.StartCenter, r.EndCenter, t)

	var staff float64
	if r.Motion == notation.MotionPro {
		// Coupled to the interpolated center at every t, never
		// interpolated on its own
		staff = vmath.NormalizeAngle(center + math.Pi)
	} else {
		staff = vmath.LerpAngle(r.StartStaff, r.TargetStaff, t)
	}

	x, y := vmath.PolarXY(center)
	return PropState{
		CenterPathAngle:    center,
		StaffRotationAngle: staff,
		X:                  x,
		Y:                  y,
	}, warns
}

// SampleStep computes both hands of a step at phase t
func SampleStep(step sequence.MotionStep, next *sequence.MotionStep, t float64) (blue, red PropState, warns []Warning) {
	var nextBlue, nextRed *sequence.MotionAttributes
	if next != nil {
		nextBlue, nextRed = &next.Blue, &next.Red
	}
	var w []Warning
	blue, w = Sample(step.Blue, nextBlue, t)
	warns = append(warns, w...)
	red, w = Sample(step.Red, nextRed, t)
	warns = append(warns, w...)
	return blue, red, warns
}
