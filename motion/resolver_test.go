package motion

import (
	"math"
	"testing"

	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/vmath"
)

const epsilon = 1e-9

func angleClose(a, b float64) bool {
	return math.Abs(vmath.AngleDiff(a, b)) < epsilon
}

func TestResolvePro(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "pro",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
	}
	r, warns := Resolve(a, nil)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if r.Motion != notation.MotionPro {
		t.Errorf("motion = %v, want pro", r.Motion)
	}
	if !angleClose(r.StartCenter, 0) || !angleClose(r.EndCenter, math.Pi/2) {
		t.Errorf("centers = (%v, %v), want (0, Pi/2)", r.StartCenter, r.EndCenter)
	}
	if !angleClose(r.StartStaff, math.Pi) {
		t.Errorf("start staff = %v, want Pi", r.StartStaff)
	}
	if !angleClose(r.TargetStaff, 3*math.Pi/2) {
		t.Errorf("target staff = %v, want 3Pi/2 (opposite the end center)", r.TargetStaff)
	}
}

func TestResolveAnti(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		rot        string
		turns      sequence.Turns
		wantTarget float64
	}{
		{"cw quarter no turns", "e", "s", "cw", sequence.Turns{}, math.Pi / 2},
		{"ccw quarter no turns", "e", "s", "ccw", sequence.Turns{}, math.Pi / 2},
		{"cw quarter one turn", "e", "s", "cw", sequence.Turns{Count: 1}, 3 * math.Pi / 2},
		{"ccw quarter one turn", "e", "s", "ccw", sequence.Turns{Count: 1}, 3 * math.Pi / 2},
		{"continuous counts zero", "e", "s", "cw", sequence.Turns{Continuous: true}, math.Pi / 2},
		{"backward travel", "s", "e", "cw", sequence.Turns{}, 0},
		{"unconstrained winding", "e", "s", "", sequence.Turns{}, math.Pi / 2},
	}
	for _, tt := range tests {
		a := sequence.MotionAttributes{
			MotionType: "anti",
			StartLoc:   tt.start,
			EndLoc:     tt.end,
			StartOri:   "in",
			RotDir:     tt.rot,
			Turns:      tt.turns,
		}
		r, warns := Resolve(a, nil)
		if len(warns) != 0 {
			t.Errorf("%s: unexpected warnings: %v", tt.name, warns)
		}
		if !angleClose(r.TargetStaff, tt.wantTarget) {
			t.Errorf("%s: target staff = %v, want %v", tt.name, r.TargetStaff, tt.wantTarget)
		}
	}
}

func TestResolveAntiCountersTravel(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "anti",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
		RotDir:     "cw",
	}
	r, _ := Resolve(a, nil)

	travel := vmath.AngleDiff(r.StartCenter, r.EndCenter)
	spin := vmath.AngleDiff(r.StartStaff, r.TargetStaff)
	if travel*spin >= 0 {
		t.Errorf("staff spin %v does not oppose travel %v", spin, travel)
	}
	if math.Abs(travel+spin) > epsilon {
		t.Errorf("spin %v is not the negation of travel %v", spin, travel)
	}
}

func TestResolveStaticHold(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "static",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
	}
	r, warns := Resolve(a, nil)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if !angleClose(r.TargetStaff, r.StartStaff) {
		t.Errorf("target staff = %v, want start staff %v", r.TargetStaff, r.StartStaff)
	}
}

func TestResolveEndOrientationOverride(t *testing.T) {
	tests := []struct {
		name       string
		motion     string
		endOri     string
		wantTarget float64
	}{
		// End orientation "in" at end center s is 3Pi/2, far beyond the
		// tolerance from start staff Pi
		{"static overridden", "static", "in", 3 * math.Pi / 2},
		{"dash overridden", "dash", "out", math.Pi / 2},
		{"anti overridden", "anti", "in", 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		a := sequence.MotionAttributes{
			MotionType: tt.motion,
			StartLoc:   "e",
			EndLoc:     "s",
			StartOri:   "in",
			EndOri:     tt.endOri,
		}
		r, warns := Resolve(a, nil)
		if len(warns) != 0 {
			t.Errorf("%s: unexpected warnings: %v", tt.name, warns)
		}
		if !angleClose(r.TargetStaff, tt.wantTarget) {
			t.Errorf("%s: target staff = %v, want %v", tt.name, r.TargetStaff, tt.wantTarget)
		}
	}
}

func TestResolveStaticToleranceHolds(t *testing.T) {
	// End orientation resolves within the tolerance of the start
	// staff: the start angle is kept to avoid drift
	a := sequence.MotionAttributes{
		MotionType: "static",
		StartLoc:   "e",
		EndLoc:     "e",
		StartOri:   "in",
		EndOri:     "in",
	}
	r, _ := Resolve(a, nil)
	if !angleClose(r.TargetStaff, r.StartStaff) {
		t.Errorf("target staff = %v, want start staff %v held", r.TargetStaff, r.StartStaff)
	}
}

func TestResolveProIgnoresEndOrientation(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "pro",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
		EndOri:     "out",
	}
	r, _ := Resolve(a, nil)
	if !angleClose(r.TargetStaff, 3*math.Pi/2) {
		t.Errorf("target staff = %v, want 3Pi/2 regardless of end_ori", r.TargetStaff)
	}
}

func TestResolveUnknownTokens(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "spiral",
		StartLoc:   "q",
		EndLoc:     "zz",
		StartOri:   "sideways",
	}
	r, warns := Resolve(a, nil)

	if r.Motion != notation.MotionStatic {
		t.Errorf("motion = %v, want static fallback", r.Motion)
	}
	if r.StartCenter != 0 || r.EndCenter != 0 {
		t.Errorf("centers = (%v, %v), want (0, 0) defaults", r.StartCenter, r.EndCenter)
	}
	if !angleClose(r.StartStaff, math.Pi) {
		t.Errorf("start staff = %v, want Pi (in at default center)", r.StartStaff)
	}

	want := map[Warning]bool{
		{Kind: WarnUnknownToken, Field: "start_loc", Token: "q"}:          false,
		{Kind: WarnUnknownToken, Field: "end_loc", Token: "zz"}:           false,
		{Kind: WarnUnknownToken, Field: "start_ori", Token: "sideways"}:   false,
		{Kind: WarnMotionFallback, Field: "motion_type", Token: "spiral"}: false,
	}
	for _, w := range warns {
		if _, ok := want[w]; ok {
			want[w] = true
		} else {
			t.Errorf("unexpected warning %v", w)
		}
	}
	for w, seen := range want {
		if !seen {
			t.Errorf("missing warning %v", w)
		}
	}
}

func TestResolveUnknownRotation(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "anti",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
		RotDir:     "widdershins",
		Turns:      sequence.Turns{Count: 1},
	}
	r, warns := Resolve(a, nil)

	found := false
	for _, w := range warns {
		if w.Field == "prop_rot_dir" && w.Token == "widdershins" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing prop_rot_dir warning, got %v", warns)
	}
	// Unknown winding behaves like the default positive direction
	if !angleClose(r.TargetStaff, 3*math.Pi/2) {
		t.Errorf("target staff = %v, want 3Pi/2", r.TargetStaff)
	}
}

func TestResolveEndCenterFallback(t *testing.T) {
	base := sequence.MotionAttributes{
		MotionType: "pro",
		StartLoc:   "e",
		StartOri:   "in",
	}

	next := &sequence.MotionAttributes{StartLoc: "s"}
	r, warns := Resolve(base, next)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if !angleClose(r.EndCenter, math.Pi/2) {
		t.Errorf("end center = %v, want next start Pi/2", r.EndCenter)
	}

	r, _ = Resolve(base, nil)
	if !angleClose(r.EndCenter, r.StartCenter) {
		t.Errorf("end center = %v, want held start center %v", r.EndCenter, r.StartCenter)
	}

	r, _ = Resolve(base, &sequence.MotionAttributes{})
	if !angleClose(r.EndCenter, r.StartCenter) {
		t.Errorf("end center = %v, want held start center %v with empty next", r.EndCenter, r.StartCenter)
	}
}

func TestResolveMissingMotionType(t *testing.T) {
	a := sequence.MotionAttributes{StartLoc: "e", EndLoc: "s"}
	r, warns := Resolve(a, nil)
	if r.Motion != notation.MotionStatic {
		t.Errorf("motion = %v, want static fallback", r.Motion)
	}
	found := false
	for _, w := range warns {
		if w.Kind == WarnMotionFallback {
			found = true
		}
	}
	if !found {
		t.Errorf("missing motion fallback warning, got %v", warns)
	}
}
