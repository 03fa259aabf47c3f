package sequence

import "github.com/lixenwraith/kinloom/notation"

// Turns is the number of extra half-rotations an anti motion adds.
// Continuous marks the freeform document sentinel; it contributes no
// half-rotations but is preserved for display and inspection
type Turns struct {
	Count      int
	Continuous bool
}

// MotionAttributes is one hand's motion description within a step.
// Tokens are the lowercased document vocabulary; resolution to angles
// happens at sample time so unknown tokens degrade instead of failing
type MotionAttributes struct {
	MotionType string
	StartLoc   string
	EndLoc     string
	StartOri   string
	EndOri     string
	RotDir     string
	Turns      Turns
}

// MotionStep is one beat of a sequence with attributes for both hands
type MotionStep struct {
	Beat   int
	Letter string
	Blue   MotionAttributes
	Red    MotionAttributes
}

// Attributes returns the step's attributes for the given hand
func (s *MotionStep) Attributes(hand notation.Hand) MotionAttributes {
	if hand == notation.HandRed {
		return s.Red
	}
	return s.Blue
}

// Sequence is the normalized in-memory form shared by every consumer.
// Start is the beat-zero pose; Steps hold beats 1..len(Steps)
type Sequence struct {
	Word   string
	Author string
	Grid   notation.GridMode
	Start  MotionStep
	Steps  []MotionStep
}

// TotalBeats returns the playable duration in beats
func (s *Sequence) TotalBeats() int {
	return len(s.Steps)
}
