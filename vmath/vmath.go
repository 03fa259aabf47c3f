// Package vmath provides the angle arithmetic used by motion resolution.
// All angles are float64 radians; the canonical range is [0, Tau) with
// clockwise-positive winding when east is zero.
package vmath

import "math"

// Tau is one full rotation
const Tau = 2 * math.Pi

// NormalizeAngle wraps angle to [0, Tau)
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, Tau)
	if angle < 0 {
		angle += Tau
	}
	return angle
}

// NormalizeSigned wraps angle to (-Pi, Pi]
func NormalizeSigned(angle float64) float64 {
	angle = NormalizeAngle(angle)
	if angle > math.Pi {
		angle -= Tau
	}
	return angle
}

// AngleDiff returns shortest signed difference between angles
// Result in (-Pi, Pi]; exactly opposite angles resolve to +Pi
func AngleDiff(from, to float64) float64 {
	return NormalizeSigned(to - from)
}

// LerpAngle interpolates from a to b along the shortest arc
// Traversal never exceeds Pi; result is normalized to [0, Tau)
func LerpAngle(a, b, t float64) float64 {
	return NormalizeAngle(a + AngleDiff(a, b)*t)
}

// Lerp performs plain linear interpolation
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PolarXY converts an angle on the unit circle to cartesian coordinates
func PolarXY(angle float64) (float64, float64) {
	return math.Cos(angle), math.Sin(angle)
}

// Degrees converts radians to degrees for display
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
