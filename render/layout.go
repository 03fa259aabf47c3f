package render

import (
	"math"

	"github.com/lixenwraith/kinloom/parameter"
	"github.com/lixenwraith/kinloom/vmath"
)

// Layout fixes where the travel circle sits on screen. The circle is
// drawn as an ellipse whose horizontal radius is stretched to
// compensate for terminal cells being taller than they are wide
type Layout struct {
	CenterX float64
	CenterY float64
	RadiusX float64
	RadiusY float64
}

// ComputeLayout fits the travel circle into a terminal of the given
// size, reserving rows at the bottom for the status bar
func ComputeLayout(width, height int) Layout {
	usable := height - parameter.StatusBarRows
	if usable < 3 {
		usable = 3
	}
	if width < 3 {
		width = 3
	}

	ry := float64(usable-1) / 2 * parameter.RingRadiusScale
	rx := ry * parameter.CellAspect
	if maxRx := float64(width-1) / 2 * parameter.RingRadiusScale; rx > maxRx {
		rx = maxRx
		ry = rx / parameter.CellAspect
	}

	return Layout{
		CenterX: float64(width-1) / 2,
		CenterY: float64(usable-1) / 2,
		RadiusX: rx,
		RadiusY: ry,
	}
}

// Project maps an angle on the travel circle to fractional cell
// coordinates
func (l Layout) Project(angle float64) (float64, float64) {
	x, y := vmath.PolarXY(angle)
	return l.CenterX + x*l.RadiusX, l.CenterY + y*l.RadiusY
}

// ProjectUnit maps a point on the unit circle to fractional cell
// coordinates
func (l Layout) ProjectUnit(x, y float64) (float64, float64) {
	return l.CenterX + x*l.RadiusX, l.CenterY + y*l.RadiusY
}

// StaffSpan returns the endpoints of a staff centered on the given head
// position and rotated to the given angle. Endpoint spacing follows the
// same per-axis stretch as the ring so the staff appears straight
func (l Layout) StaffSpan(headX, headY, staffAngle float64) (x0, y0, x1, y1 float64) {
	dx, dy := vmath.PolarXY(staffAngle)
	lenX := l.RadiusX * parameter.StaffLengthScale
	lenY := l.RadiusY * parameter.StaffLengthScale
	return headX - dx*lenX, headY - dy*lenY, headX + dx*lenX, headY + dy*lenY
}

// Cell rounds fractional cell coordinates to the nearest cell
func Cell(x, y float64) (int, int) {
	return int(math.Round(x)), int(math.Round(y))
}
