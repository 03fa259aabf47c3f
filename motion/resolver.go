package motion

import (
	"math"

	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/parameter"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/vmath"
)

// Resolve converts one hand's step attributes into boundary angles.
// next carries the following step's attributes for the same hand and
// may be nil on the last step; it supplies the end-center fallback
// when the step omits its end location
func Resolve(a sequence.MotionAttributes, next *sequence.MotionAttributes) (Resolved, []Warning) {
	var warns []Warning
	warn := func(kind WarningKind, field, token string) {
		warns = append(warns, Warning{Kind: kind, Field: field, Token: token})
	}

	startCenter, ok := notation.LocationAngle(a.StartLoc)
	if !ok {
		warn(WarnUnknownToken, "start_loc", a.StartLoc)
	}

	endCenter := resolveEndCenter(a, next, startCenter, warn)

	startStaff, ok := notation.OrientationAngle(a.StartOri, startCenter)
	if !ok {
		warn(WarnUnknownToken, "start_ori", a.StartOri)
	}

	motion, ok := notation.ParseMotionType(a.MotionType)
	if !ok {
		warn(WarnMotionFallback, "motion_type", a.MotionType)
	}

	r := Resolved{
		StartCenter: startCenter,
		EndCenter:   endCenter,
		StartStaff:  startStaff,
		Motion:      motion,
	}
	r.TargetStaff = resolveTargetStaff(a, r, warn)
	return r, warns
}

// resolveEndCenter picks the step's destination on the travel circle.
// A missing end location falls back to the next step's start location
// and finally to holding the start
func resolveEndCenter(a sequence.MotionAttributes, next *sequence.MotionAttributes, startCenter float64, warn func(WarningKind, string, string)) float64 {
	if a.EndLoc != "" {
		angle, ok := notation.LocationAngle(a.EndLoc)
		if !ok {
			warn(WarnUnknownToken, "end_loc", a.EndLoc)
		}
		return angle
	}
	if next != nil && next.StartLoc != "" {
		angle, ok := notation.LocationAngle(next.StartLoc)
		if !ok {
			warn(WarnUnknownToken, "start_loc", next.StartLoc)
		}
		return angle
	}
	return startCenter
}

// resolveTargetStaff computes where the staff ends the step
func resolveTargetStaff(a sequence.MotionAttributes, r Resolved, warn func(WarningKind, string, string)) float64 {
	var target float64
	switch r.Motion {
	case notation.MotionPro:
		// Locked opposite the hand; the end boundary follows the hand
		return vmath.NormalizeAngle(r.EndCenter + math.Pi)

	case notation.MotionAnti:
		// The staff rotates against the direction of travel, plus any
		// authored extra half-rotations
		rot, ok := notation.ParseRotation(a.RotDir)
		if !ok {
			warn(WarnUnknownToken, "prop_rot_dir", a.RotDir)
		}
		dir := 1.0
		if rot == notation.RotCCW {
			dir = -1.0
		}
		delta := vmath.AngleDiff(r.StartCenter, r.EndCenter)
		target = vmath.NormalizeAngle(r.StartStaff - delta + math.Pi*float64(a.Turns.Count)*dir)

	default:
		// Static and dash hold the staff angle; so does the fallback
		// for unknown motion types
		target = r.StartStaff
	}

	// A declared end orientation overrides the computed target for
	// every non-pro motion. Static motions honor a small tolerance so
	// redundant declarations do not cause drift
	if a.EndOri != "" {
		endStaff, ok := notation.OrientationAngle(a.EndOri, r.EndCenter)
		if !ok {
			warn(WarnUnknownToken, "end_ori", a.EndOri)
			return target
		}
		if r.Motion == notation.MotionStatic {
			if math.Abs(vmath.AngleDiff(r.StartStaff, endStaff)) > parameter.OrientationOverrideTolerance {
				return endStaff
			}
			return target
		}
		return endStaff
	}
	return target
}
