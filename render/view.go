// Package render draws playback onto a tcell screen: the travel circle
// with its grid locations, both prop staffs, and a two-row status bar.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinloom/engine"
	"github.com/lixenwraith/kinloom/motion"
	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/vmath"
)

const ringDotCount = 96

// View renders one engine's playback state into a terminal
type View struct {
	screen tcell.Screen
	width  int
	height int
	layout Layout
	muted  bool
}

// NewView creates a view over an initialized screen
func NewView(screen tcell.Screen) *View {
	v := &View{screen: screen}
	v.Resize()
	return v
}

// Resize recomputes the layout after a terminal size change
func (v *View) Resize() {
	v.width, v.height = v.screen.Size()
	v.layout = ComputeLayout(v.width, v.height)
}

// SetMuted updates the mute indicator shown in the key hints
func (v *View) SetMuted(muted bool) {
	v.muted = muted
}

// RenderFrame draws one complete player frame
func (v *View) RenderFrame(eng *engine.Engine) {
	v.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	v.drawRing(eng.Metadata().Grid, defaultStyle)

	// Red first so blue stays visible when the props overlap
	v.drawProp(eng.PropState(notation.HandRed), RgbRedPropHead, RgbRedStaff, 'R', defaultStyle)
	v.drawProp(eng.PropState(notation.HandBlue), RgbBluePropHead, RgbBlueStaff, 'B', defaultStyle)

	v.drawStatusBar(eng, defaultStyle)

	v.screen.Show()
}

// drawRing draws the travel circle and the location labels of the
// active grid mode
func (v *View) drawRing(grid notation.GridMode, defaultStyle tcell.Style) {
	dotStyle := defaultStyle.Foreground(RgbRing)
	for i := 0; i < ringDotCount; i++ {
		angle := vmath.Tau * float64(i) / ringDotCount
		x, y := Cell(v.layout.Project(angle))
		v.setCell(x, y, '·', dotStyle)
	}

	markStyle := defaultStyle.Foreground(RgbRingMark)
	for _, token := range notation.ModeLocations(grid) {
		angle, ok := notation.LocationAngle(token)
		if !ok {
			continue
		}
		x, y := Cell(v.layout.Project(angle))
		for i, ch := range token {
			v.setCell(x+i, y, ch, markStyle)
		}
	}

	cx, cy := Cell(v.layout.CenterX, v.layout.CenterY)
	v.setCell(cx, cy, '+', defaultStyle.Foreground(RgbGridCenter))
}

// drawProp draws one prop: its staff as a block segment through the
// head, and the head itself on top
func (v *View) drawProp(st motion.PropState, headColor, staffColor tcell.Color, label rune, defaultStyle tcell.Style) {
	headX, headY := v.layout.ProjectUnit(st.X, st.Y)

	x0, y0, x1, y1 := v.layout.StaffSpan(headX, headY, st.StaffRotationAngle)
	v.drawSegment(x0, y0, x1, y1, defaultStyle.Foreground(staffColor))

	hx, hy := Cell(headX, headY)
	v.setCell(hx, hy, label, defaultStyle.Foreground(headColor).Bold(true))
}

// drawSegment plots a line by sampling fixed fractions of the span,
// enough steps that adjacent samples land on adjacent cells
func (v *View) drawSegment(fromX, fromY, toX, toY float64, style tcell.Style) {
	dx := toX - fromX
	dy := toY - fromY
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1

	for i := 0; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		x := int(math.Round(fromX + dx*progress))
		y := int(math.Round(fromY + dy*progress))
		v.setCell(x, y, '█', style)
	}
}

// drawStatusBar draws the two reserved rows: playback status on the
// first, key hints on the second
func (v *View) drawStatusBar(eng *engine.Engine, defaultStyle tcell.Style) {
	statusY := v.height - 2
	hintsY := v.height - 1
	if statusY < 0 {
		return
	}

	state := eng.State()
	chipText := fmt.Sprintf(" %s ", strings.ToUpper(state.String()))
	chipStyle := defaultStyle.Foreground(RgbStatusText).Background(StateChipColor(state))
	v.drawText(0, statusY, chipText, chipStyle)

	meta := eng.Metadata()
	title := meta.Word
	if meta.Author != "" {
		title = fmt.Sprintf("%s by %s", meta.Word, meta.Author)
	}
	loopText := "off"
	if eng.Loop() {
		loopText = "on"
	}
	status := fmt.Sprintf(" %s  beat %.2f/%d  speed %.2fx  loop %s",
		title, eng.CurrentBeat(), eng.TotalBeats(), eng.Speed(), loopText)
	v.drawText(len(chipText), statusY, status, defaultStyle.Foreground(RgbStatusBar))

	muteText := "m mute"
	if v.muted {
		muteText = "m unmute"
	}
	hints := fmt.Sprintf(" space play/pause  left/right scrub  +/- speed  l loop  %s  r reset  q quit", muteText)
	v.drawText(0, hintsY, hints, defaultStyle.Foreground(RgbKeyHints))
}

// drawText writes a string one rune per cell starting at x
func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		if x+i >= v.width {
			return
		}
		v.setCell(x+i, y, ch, style)
	}
}

// setCell writes a rune if the cell is on screen
func (v *View) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return
	}
	v.screen.SetContent(x, y, ch, nil, style)
}
