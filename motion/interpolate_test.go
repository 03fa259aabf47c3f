package motion

import (
	"math"
	"testing"

	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/vmath"
)

func TestSampleStatic(t *testing.T) {
	// Hand travels east to south while the staff holds its start angle
	a := sequence.MotionAttributes{
		MotionType: "static",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
	}

	st, warns := Sample(a, nil, 0.5)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if !angleClose(st.CenterPathAngle, math.Pi/4) {
		t.Errorf("center at t=0.5 = %v, want Pi/4", st.CenterPathAngle)
	}
	if !angleClose(st.StaffRotationAngle, math.Pi) {
		t.Errorf("staff at t=0.5 = %v, want Pi unchanged", st.StaffRotationAngle)
	}

	for _, tt := range []float64{0, 0.25, 0.75, 1} {
		st, _ := Sample(a, nil, tt)
		if !angleClose(st.StaffRotationAngle, math.Pi) {
			t.Errorf("staff at t=%v = %v, want Pi unchanged", tt, st.StaffRotationAngle)
		}
	}
}

func TestSamplePro(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "pro",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
	}

	st, _ := Sample(a, nil, 0.5)
	if !angleClose(st.CenterPathAngle, math.Pi/4) {
		t.Errorf("center at t=0.5 = %v, want Pi/4", st.CenterPathAngle)
	}
	if !angleClose(st.StaffRotationAngle, 5*math.Pi/4) {
		t.Errorf("staff at t=0.5 = %v, want 5Pi/4", st.StaffRotationAngle)
	}
}

func TestSampleProCoupling(t *testing.T) {
	// The staff is exactly opposite the hand at every phase, for every
	// pro step, regardless of declared orientations
	attrs := []sequence.MotionAttributes{
		{MotionType: "pro", StartLoc: "e", EndLoc: "s", StartOri: "in"},
		{MotionType: "pro", StartLoc: "n", EndLoc: "w", StartOri: "out", EndOri: "out"},
		{MotionType: "pro", StartLoc: "sw", EndLoc: "ne", StartOri: "in", EndOri: "in"},
	}
	const steps = 32
	for _, a := range attrs {
		for i := 0; i <= steps; i++ {
			tt := float64(i) / steps
			st, _ := Sample(a, nil, tt)
			want := vmath.NormalizeAngle(st.CenterPathAngle + math.Pi)
			if !angleClose(st.StaffRotationAngle, want) {
				t.Fatalf("pro %s->%s at t=%v: staff = %v, want %v opposite center %v",
					a.StartLoc, a.EndLoc, tt, st.StaffRotationAngle, want, st.CenterPathAngle)
			}
		}
	}
}

func TestSampleAntiOpposesTravel(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "anti",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
		RotDir:     "cw",
	}

	start, _ := Sample(a, nil, 0)
	end, _ := Sample(a, nil, 1)

	travel := vmath.AngleDiff(start.CenterPathAngle, end.CenterPathAngle)
	spin := vmath.AngleDiff(start.StaffRotationAngle, end.StaffRotationAngle)
	if !angleClose(travel, math.Pi/2) {
		t.Errorf("travel = %v, want Pi/2", travel)
	}
	if !angleClose(spin, -math.Pi/2) {
		t.Errorf("spin = %v, want -Pi/2 opposing travel", spin)
	}

	mid, _ := Sample(a, nil, 0.5)
	if !angleClose(mid.StaffRotationAngle, 3*math.Pi/4) {
		t.Errorf("staff at t=0.5 = %v, want 3Pi/4", mid.StaffRotationAngle)
	}
}

func TestSampleClampsPhase(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "pro",
		StartLoc:   "e",
		EndLoc:     "s",
		StartOri:   "in",
	}

	below, _ := Sample(a, nil, -1)
	at0, _ := Sample(a, nil, 0)
	if below != at0 {
		t.Errorf("t=-1 state %+v differs from t=0 state %+v", below, at0)
	}

	above, _ := Sample(a, nil, 2)
	at1, _ := Sample(a, nil, 1)
	if above != at1 {
		t.Errorf("t=2 state %+v differs from t=1 state %+v", above, at1)
	}
}

func TestSampleUnitCircleProjection(t *testing.T) {
	a := sequence.MotionAttributes{
		MotionType: "static",
		StartLoc:   "s",
		EndLoc:     "s",
		StartOri:   "in",
	}
	st, _ := Sample(a, nil, 0)
	if math.Abs(st.X) > epsilon || math.Abs(st.Y-1) > epsilon {
		t.Errorf("projection = (%v, %v), want (0, 1) for south", st.X, st.Y)
	}
}

func TestSampleStepBothHands(t *testing.T) {
	step := sequence.MotionStep{
		Blue: sequence.MotionAttributes{MotionType: "pro", StartLoc: "e", EndLoc: "s", StartOri: "in"},
		Red:  sequence.MotionAttributes{MotionType: "pro", StartLoc: "w", EndLoc: "bogus", StartOri: "in"},
	}

	blue, red, warns := SampleStep(step, nil, 0)
	if !angleClose(blue.CenterPathAngle, 0) {
		t.Errorf("blue center = %v, want 0", blue.CenterPathAngle)
	}
	if !angleClose(red.CenterPathAngle, math.Pi) {
		t.Errorf("red center = %v, want Pi", red.CenterPathAngle)
	}
	if len(warns) == 0 {
		t.Error("expected a warning for the bogus red end_loc")
	}
}

func sampleTestSequence(t *testing.T) *sequence.Sequence {
	t.Helper()
	doc := `[
		{"beat": 0, "blue": {"start_loc": "e", "start_ori": "in"}, "red": {"start_loc": "w", "start_ori": "in"}},
		{"beat": 1, "blue": {"motion_type": "pro", "end_loc": "s"}, "red": {"motion_type": "static", "end_loc": "n"}},
		{"beat": 2, "blue": {"motion_type": "anti", "end_loc": "w", "prop_rot_dir": "cw"}, "red": {"motion_type": "dash", "end_loc": "e"}}
	]`
	seq, err := sequence.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return seq
}

func TestSampleAtTimeline(t *testing.T) {
	seq := sampleTestSequence(t)

	// Beat 0 reproduces the start pose
	st, _ := SampleAt(seq, notation.HandBlue, 0)
	if !angleClose(st.CenterPathAngle, 0) {
		t.Errorf("beat 0 center = %v, want 0 (start pose)", st.CenterPathAngle)
	}
	if !angleClose(st.StaffRotationAngle, math.Pi) {
		t.Errorf("beat 0 staff = %v, want Pi (start pose)", st.StaffRotationAngle)
	}

	// Mid-step sampling
	st, _ = SampleAt(seq, notation.HandBlue, 0.5)
	if !angleClose(st.CenterPathAngle, math.Pi/4) {
		t.Errorf("beat 0.5 center = %v, want Pi/4", st.CenterPathAngle)
	}

	// An integer boundary belongs to the following step
	st, _ = SampleAt(seq, notation.HandBlue, 1)
	if !angleClose(st.CenterPathAngle, math.Pi/2) {
		t.Errorf("beat 1 center = %v, want Pi/2 (step 2 start)", st.CenterPathAngle)
	}

	// The end of the timeline holds the final step at rest
	end, _ := SampleAt(seq, notation.HandBlue, 2)
	if !angleClose(end.CenterPathAngle, math.Pi) {
		t.Errorf("beat 2 center = %v, want Pi (step 2 end)", end.CenterPathAngle)
	}
	beyond, _ := SampleAt(seq, notation.HandBlue, 99)
	if beyond != end {
		t.Errorf("beat 99 state %+v differs from beat 2 state %+v", beyond, end)
	}
	below, _ := SampleAt(seq, notation.HandBlue, -5)
	zero, _ := SampleAt(seq, notation.HandBlue, 0)
	if below != zero {
		t.Errorf("beat -5 state %+v differs from beat 0 state %+v", below, zero)
	}
}

func TestSampleAtDeterministic(t *testing.T) {
	seq := sampleTestSequence(t)
	for _, beat := range []float64{0, 0.3, 1, 1.7, 2} {
		first, _ := SampleAt(seq, notation.HandRed, beat)
		second, _ := SampleAt(seq, notation.HandRed, beat)
		if first != second {
			t.Errorf("beat %v: repeated sampling diverged: %+v vs %+v", beat, first, second)
		}
	}
}

func TestSampleBoth(t *testing.T) {
	seq := sampleTestSequence(t)
	blue, red, warns := SampleBoth(seq, 0)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if !angleClose(blue.CenterPathAngle, 0) || !angleClose(red.CenterPathAngle, math.Pi) {
		t.Errorf("centers = (%v, %v), want (0, Pi)", blue.CenterPathAngle, red.CenterPathAngle)
	}
}

func TestSampleAtEmptySequence(t *testing.T) {
	seq := &sequence.Sequence{
		Start: sequence.MotionStep{
			Blue: sequence.MotionAttributes{MotionType: "static", StartLoc: "e", StartOri: "in"},
		},
	}
	st, _ := SampleAt(seq, notation.HandBlue, 3)
	if !angleClose(st.CenterPathAngle, 0) {
		t.Errorf("center = %v, want 0 from the bare pose", st.CenterPathAngle)
	}
}
