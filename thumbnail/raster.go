package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/kinloom/motion"
	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/parameter"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/vmath"
)

// captionHeight is the pixel strip reserved under the ring for the
// word and author line
const captionHeight = 16

const headDotRadius = 3

var (
	colorBackground = color.RGBA{R: 26, G: 27, B: 38, A: 255}
	colorRing       = color.RGBA{R: 70, G: 72, B: 90, A: 255}
	colorBlueTrace  = color.RGBA{R: 60, G: 100, B: 200, A: 255}
	colorBlueHead   = color.RGBA{R: 100, G: 150, B: 255, A: 255}
	colorRedTrace   = color.RGBA{R: 180, G: 50, B: 50, A: 255}
	colorRedHead    = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colorCaption    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// framePalette is the fixed palette shared by all GIF frames. Index
// zero is the background, so a freshly allocated frame needs no fill
var framePalette = color.Palette{
	colorBackground,
	colorRing,
	colorBlueTrace,
	colorBlueHead,
	colorRedTrace,
	colorRedHead,
	colorCaption,
}

// raster holds the pixel geometry of one rendered image. Pixels are
// square, so unlike the terminal view no aspect stretch is applied
type raster struct {
	width  int
	height int
	cx     float64
	cy     float64
	radius float64
}

func newRaster(width, height int) raster {
	usable := height - captionHeight
	if usable < 2 {
		usable = 2
	}
	side := usable
	if width < side {
		side = width
	}
	return raster{
		width:  width,
		height: height,
		cx:     float64(width) / 2,
		cy:     float64(usable) / 2,
		radius: float64(side) / 2 * parameter.RingRadiusScale,
	}
}

// project maps a point on the unit circle to pixel coordinates
func (r raster) project(x, y float64) (float64, float64) {
	return r.cx + x*r.radius, r.cy + y*r.radius
}

// drawRing plots the travel circle at roughly one-pixel arc steps
func (r raster) drawRing(img draw.Image) {
	steps := int(vmath.Tau*r.radius) + 1
	for i := 0; i < steps; i++ {
		angle := vmath.Tau * float64(i) / float64(steps)
		x, y := vmath.PolarXY(angle)
		px, py := r.project(x, y)
		img.Set(int(math.Round(px)), int(math.Round(py)), colorRing)
	}
}

// drawPath traces the center path of one hand across the whole
// timeline, connecting consecutive samples
func (r raster) drawPath(img draw.Image, seq *sequence.Sequence, hand notation.Hand, c color.Color) {
	total := float64(seq.TotalBeats())

	var prevX, prevY float64
	for i := 0; i <= parameter.ThumbnailPathSamples; i++ {
		beat := total * float64(i) / parameter.ThumbnailPathSamples
		st, _ := motion.SampleAt(seq, hand, beat)
		x, y := r.project(st.X, st.Y)
		if i > 0 {
			drawSegment(img, prevX, prevY, x, y, c)
		}
		prevX, prevY = x, y
	}
}

// drawPose draws both staffs and prop heads at one beat, red under
// blue
func (r raster) drawPose(img draw.Image, seq *sequence.Sequence, beat float64) {
	blue, red, _ := motion.SampleBoth(seq, beat)
	r.drawStaff(img, red, colorRedTrace, colorRedHead)
	r.drawStaff(img, blue, colorBlueTrace, colorBlueHead)
}

func (r raster) drawStaff(img draw.Image, st motion.PropState, staffColor, headColor color.Color) {
	headX, headY := r.project(st.X, st.Y)

	dx, dy := vmath.PolarXY(st.StaffRotationAngle)
	l := r.radius * parameter.StaffLengthScale
	drawSegment(img, headX-dx*l, headY-dy*l, headX+dx*l, headY+dy*l, staffColor)

	fillDot(img, headX, headY, headDotRadius, headColor)
}

// drawCaption writes the word and author under the ring
func (r raster) drawCaption(img draw.Image, seq *sequence.Sequence) {
	text := seq.Word
	if seq.Author != "" {
		text = fmt.Sprintf("%s by %s", seq.Word, seq.Author)
	}
	if text == "" {
		return
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorCaption),
		Face: basicfont.Face7x13,
	}
	drawer.Dot = fixed.Point26_6{
		X: fixed.Int26_6(6 << 6),
		Y: fixed.Int26_6((r.height - 5) << 6),
	}
	drawer.DrawString(text)
}

// drawSegment plots a line by sampling fixed fractions of the span,
// enough steps that adjacent samples land on adjacent pixels
func drawSegment(img draw.Image, x0, y0, x1, y1 float64, c color.Color) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		img.Set(int(math.Round(x0+dx*t)), int(math.Round(y0+dy*t)), c)
	}
}

// fillDot plots a filled disc. Out-of-bounds pixels are dropped by the
// image itself
func fillDot(img draw.Image, cx, cy float64, radius int, c color.Color) {
	x0 := int(math.Round(cx))
	y0 := int(math.Round(cy))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x0+dx, y0+dy, c)
			}
		}
	}
}
