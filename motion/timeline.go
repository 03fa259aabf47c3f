package motion

import (
	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/vmath"
)

// SampleAt computes one hand's pose at an absolute beat position on
// the sequence timeline. Beat b in [k, k+1) samples step k+1 at phase
// b-k; positions outside [0, totalBeats] clamp to the nearest end,
// with the final step held at rest
func SampleAt(seq *sequence.Sequence, hand notation.Hand, beat float64) (PropState, []Warning) {
	n := len(seq.Steps)
	if n == 0 {
		return Sample(seq.Start.Attributes(hand), nil, 1)
	}

	b := vmath.Clamp(beat, 0, float64(n))
	idx := int(b)
	t := b - float64(idx)
	if idx >= n {
		idx, t = n-1, 1
	}

	var next *sequence.MotionAttributes
	if idx+1 < n {
		attrs := seq.Steps[idx+1].Attributes(hand)
		next = &attrs
	}
	return Sample(seq.Steps[idx].Attributes(hand), next, t)
}

// SampleBoth computes both hands at an absolute beat position
func SampleBoth(seq *sequence.Sequence, beat float64) (blue, red PropState, warns []Warning) {
	var w []Warning
	blue, w = SampleAt(seq, notation.HandBlue, beat)
	warns = append(warns, w...)
	red, w = SampleAt(seq, notation.HandRed, beat)
	warns = append(warns, w...)
	return blue, red, warns
}
