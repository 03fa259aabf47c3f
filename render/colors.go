package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinloom/engine"
)

// RGB color definitions for the player view
var (
	RgbBluePropHead = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbBlueStaff    = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbRedPropHead  = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbRedStaff     = tcell.NewRGBColor(180, 50, 50)   // Dark Red

	RgbRing       = tcell.NewRGBColor(70, 72, 90)    // Dim ring dots
	RgbRingMark   = tcell.NewRGBColor(180, 180, 180) // Location labels
	RgbGridCenter = tcell.NewRGBColor(120, 120, 130) // Center marker

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text on state chip
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbKeyHints   = tcell.NewRGBColor(150, 150, 150) // Dim key hints
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background

	// Playback state chip backgrounds
	RgbStatePlayingBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatePausedBg  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStateStoppedBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)

// StateChipColor returns the background color of the playback state
// indicator
func StateChipColor(state engine.PlayState) tcell.Color {
	switch state {
	case engine.StatePlaying:
		return RgbStatePlayingBg
	case engine.StatePaused:
		return RgbStatePausedBg
	default:
		return RgbStateStoppedBg
	}
}
