package notation

import (
	"math"

	"github.com/lixenwraith/kinloom/vmath"
)

// locationAngles maps every location token of both grid modes to its
// angle on the travel circle. East is zero and angles grow clockwise
// on screen (y axis points down)
var locationAngles = map[string]float64{
	"e":  0,
	"se": math.Pi / 4,
	"s":  math.Pi / 2,
	"sw": 3 * math.Pi / 4,
	"w":  math.Pi,
	"nw": 5 * math.Pi / 4,
	"n":  3 * math.Pi / 2,
	"ne": 7 * math.Pi / 4,
}

// LocationAngle returns the travel-circle angle for a location token
// Unknown tokens resolve to 0 with ok false so playback can continue
func LocationAngle(token string) (float64, bool) {
	angle, ok := locationAngles[token]
	if !ok {
		return 0, false
	}
	return angle, true
}

// OrientationAngle converts an orientation token to an absolute staff
// angle. "in" points at the circle center from the hand's position,
// "out" points away from it, and compass tokens map through the
// location table independent of the hand. A missing token means "in";
// unrecognized tokens also resolve to "in" with ok false
func OrientationAngle(token string, center float64) (float64, bool) {
	switch token {
	case "", "in":
		return vmath.NormalizeAngle(center + math.Pi), true
	case "out":
		return vmath.NormalizeAngle(center), true
	}
	if angle, ok := locationAngles[token]; ok {
		return angle, true
	}
	return vmath.NormalizeAngle(center + math.Pi), false
}
