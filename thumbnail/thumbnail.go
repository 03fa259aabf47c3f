// Package thumbnail rasters sequences into still images and looping
// animations without a terminal: the travel ring, the center path of
// both hands, and the prop staffs.
package thumbnail

import (
	"image"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/parameter"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/util"
)

// Options selects the raster size. Zero fields fall back to the
// defaults
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = parameter.ThumbnailWidth
	}
	if o.Height <= 0 {
		o.Height = parameter.ThumbnailHeight
	}
	return o
}

// WritePNG renders a still thumbnail: the full path of both hands over
// the ring, with the start pose drawn on top
func WritePNG(w io.Writer, seq *sequence.Sequence, opts Options) error {
	opts = opts.withDefaults()
	r := newRaster(opts.Width, opts.Height)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	r.drawRing(img)
	r.drawPath(img, seq, notation.HandRed, colorRedTrace)
	r.drawPath(img, seq, notation.HandBlue, colorBlueTrace)
	r.drawPose(img, seq, 0)
	r.drawCaption(img, seq)

	return png.Encode(w, img)
}

// WriteGIF renders a looping animation, stepping the pose across the
// timeline. Frame count follows the beat total, capped so long
// sequences stay bounded
func WriteGIF(w io.Writer, seq *sequence.Sequence, opts Options) error {
	opts = opts.withDefaults()
	r := newRaster(opts.Width, opts.Height)

	total := seq.TotalBeats()
	frames := util.Clamp(total*parameter.AnimationFramesPerBeat, 1, parameter.MaxAnimationFrames)

	anim := &gif.GIF{LoopCount: 0}
	for i := 0; i < frames; i++ {
		beat := float64(total) * float64(i) / float64(frames)

		frame := image.NewPaletted(image.Rect(0, 0, opts.Width, opts.Height), framePalette)
		r.drawRing(frame)
		r.drawPose(frame, seq, beat)
		r.drawCaption(frame, seq)

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, parameter.AnimationFrameDelay)
	}
	return gif.EncodeAll(w, anim)
}
