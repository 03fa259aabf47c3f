package parameter

// Terminal Player Layout
const (
	// RingRadiusScale is the fraction of the usable half-height taken by
	// the travel circle
	RingRadiusScale = 0.82

	// StaffLengthScale is the staff half-length as a fraction of the
	// travel circle radius
	StaffLengthScale = 0.45

	// CellAspect compensates terminal cells being roughly twice as tall
	// as they are wide
	CellAspect = 2.0

	// StatusBarRows is the number of rows reserved under the circle for
	// playback status and key hints
	StatusBarRows = 2
)

// Thumbnail Rendering
const (
	// ThumbnailWidth is the default raster width in pixels
	ThumbnailWidth = 320

	// ThumbnailHeight is the default raster height in pixels
	ThumbnailHeight = 320

	// ThumbnailPathSamples is how many positions are sampled per hand
	// when tracing a full sequence onto a still image
	ThumbnailPathSamples = 96

	// AnimationFramesPerBeat is the GIF frame count rendered per beat
	AnimationFramesPerBeat = 12

	// AnimationFrameDelay is the GIF inter-frame delay in hundredths of
	// a second
	AnimationFrameDelay = 5

	// MaxAnimationFrames caps GIF length for long sequences
	MaxAnimationFrames = 480
)
