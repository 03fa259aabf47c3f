// Package notation defines the token vocabulary of the sequence
// documents: grid modes, hands, location and orientation tokens, motion
// types and rotation directions, plus their angle mappings.
package notation

// GridMode selects which location ring a sequence is authored against
type GridMode int

const (
	// GridDiamond restricts hands to the four cardinal points
	GridDiamond GridMode = iota
	// GridBox widens the vocabulary to all eight points, diagonals
	// included
	GridBox
)

// String returns the document token for the mode
func (m GridMode) String() string {
	switch m {
	case GridBox:
		return "box"
	default:
		return "diamond"
	}
}

// ParseGridMode maps a document token to a GridMode
// Returns false for tokens outside the vocabulary
func ParseGridMode(s string) (GridMode, bool) {
	switch s {
	case "diamond":
		return GridDiamond, true
	case "box":
		return GridBox, true
	}
	return GridDiamond, false
}

// ModeLocations returns the ring tokens of a mode in drawing order
func ModeLocations(m GridMode) []string {
	if m == GridBox {
		return []string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}
	}
	return []string{"n", "e", "s", "w"}
}

// Hand identifies one of the two props
type Hand int

const (
	HandBlue Hand = iota
	HandRed
)

// String returns the document token for the hand
func (h Hand) String() string {
	if h == HandRed {
		return "red"
	}
	return "blue"
}

// ParseHand maps a document token to a Hand
func ParseHand(s string) (Hand, bool) {
	switch s {
	case "blue":
		return HandBlue, true
	case "red":
		return HandRed, true
	}
	return HandBlue, false
}

// MotionType classifies how the staff rotates while the hand travels
type MotionType int

const (
	// MotionStatic holds the staff angle while the hand travels
	MotionStatic MotionType = iota
	// MotionPro keeps the staff locked opposite the hand for the whole step
	MotionPro
	// MotionAnti rotates the staff against the direction of travel
	MotionAnti
	// MotionDash holds the staff angle through a positional snap
	MotionDash
)

// String returns the document token for the motion type
func (m MotionType) String() string {
	switch m {
	case MotionPro:
		return "pro"
	case MotionAnti:
		return "anti"
	case MotionDash:
		return "dash"
	default:
		return "static"
	}
}

// ParseMotionType maps a document token to a MotionType
// Unrecognized tokens fall back to static; the bool reports whether the
// token was in the vocabulary so callers can surface a diagnostic
func ParseMotionType(s string) (MotionType, bool) {
	switch s {
	case "pro":
		return MotionPro, true
	case "anti":
		return MotionAnti, true
	case "static":
		return MotionStatic, true
	case "dash":
		return MotionDash, true
	}
	return MotionStatic, false
}

// RotationDirection is the authored winding of an anti motion
type RotationDirection int

const (
	// RotNone means the document did not constrain the winding
	RotNone RotationDirection = iota
	RotCW
	RotCCW
)

// String returns the document token for the direction
func (r RotationDirection) String() string {
	switch r {
	case RotCW:
		return "cw"
	case RotCCW:
		return "ccw"
	default:
		return "no_rot"
	}
}

// ParseRotation maps a document token to a RotationDirection
// The empty token and "no_rot" are both valid absences
func ParseRotation(s string) (RotationDirection, bool) {
	switch s {
	case "cw":
		return RotCW, true
	case "ccw":
		return RotCCW, true
	case "", "no_rot":
		return RotNone, true
	}
	return RotNone, false
}
