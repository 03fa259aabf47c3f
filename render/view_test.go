package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kinloom/engine"
)

const viewTestDoc = `[
	{"word": "AB", "author": "lx"},
	{"beat": 0, "blue": {"start_loc": "e", "start_ori": "in"}, "red": {"start_loc": "w", "start_ori": "in"}},
	{"beat": 1, "letter": "A", "blue": {"motion_type": "pro", "end_loc": "s"}, "red": {"motion_type": "static", "end_loc": "w"}}
]`

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	// Init resets the simulation screen to 80x25, so size it afterwards
	screen.SetSize(width, height)
	return screen
}

// TestRenderFramePropHeads verifies both prop heads land on their
// projected ring cells
func TestRenderFramePropHeads(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	defer screen.Fini()

	eng := engine.New(nil, nil, nil)
	if err := eng.Initialize([]byte(viewTestDoc)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	v := NewView(screen)
	v.RenderFrame(eng)

	layout := ComputeLayout(100, 30)

	// Blue starts east: unit (1, 0)
	bx, by := Cell(layout.ProjectUnit(1, 0))
	mainc, _, style, _ := screen.GetContent(bx, by)
	if mainc != 'B' {
		t.Errorf("Expected 'B' at blue head (%d,%d), got '%c'", bx, by, mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != RgbBluePropHead {
		t.Errorf("Expected blue head color, got %v", fg)
	}

	// Red starts west: unit (-1, 0)
	rx, ry := Cell(layout.ProjectUnit(-1, 0))
	mainc, _, style, _ = screen.GetContent(rx, ry)
	if mainc != 'R' {
		t.Errorf("Expected 'R' at red head (%d,%d), got '%c'", rx, ry, mainc)
	}
	fg, _, _ = style.Decompose()
	if fg != RgbRedPropHead {
		t.Errorf("Expected red head color, got %v", fg)
	}
}

// TestRenderFrameStatusBar verifies the state chip and status text
func TestRenderFrameStatusBar(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	defer screen.Fini()

	eng := engine.New(nil, nil, nil)
	if err := eng.Initialize([]byte(viewTestDoc)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	v := NewView(screen)
	v.RenderFrame(eng)

	statusY := 30 - 2
	mainc, _, style, _ := screen.GetContent(1, statusY)
	if mainc != 'S' {
		t.Errorf("Expected state chip to start with 'S', got '%c'", mainc)
	}
	_, bg, _ := style.Decompose()
	if bg != RgbStateStoppedBg {
		t.Errorf("Expected stopped chip background, got %v", bg)
	}
}

// TestRenderFrameCenterMarker verifies the grid center is drawn
func TestRenderFrameCenterMarker(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	defer screen.Fini()

	eng := engine.New(nil, nil, nil)
	if err := eng.Initialize([]byte(viewTestDoc)); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	v := NewView(screen)
	v.RenderFrame(eng)

	layout := ComputeLayout(100, 30)
	cx, cy := Cell(layout.CenterX, layout.CenterY)
	mainc, _, _, _ := screen.GetContent(cx, cy)
	if mainc != '+' {
		t.Errorf("Expected '+' at grid center (%d,%d), got '%c'", cx, cy, mainc)
	}
}

// TestViewResize verifies the layout tracks screen size changes
func TestViewResize(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	defer screen.Fini()

	v := NewView(screen)
	before := v.layout

	screen.SetSize(60, 20)
	v.Resize()
	if v.layout == before {
		t.Error("layout unchanged after resize")
	}
	if v.width != 60 || v.height != 20 {
		t.Errorf("view size = %dx%d, want 60x20", v.width, v.height)
	}
}
