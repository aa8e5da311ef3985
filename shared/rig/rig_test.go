package rig

import (
	"math"
	"testing"

	cfg "github.com/automoto/seasonscape/config"
)

func TestWinterIdleExpression(t *testing.T) {
	e := SelectExpression(cfg.Winter, false)
	if e.Mouth != MouthWorried {
		t.Errorf("Mouth = %v, want MouthWorried", e.Mouth)
	}
	if !e.SnotBubble {
		t.Errorf("SnotBubble = false, want true")
	}
	if e.EyesClosed {
		t.Errorf("EyesClosed = true, want false")
	}
	if e.Hat != HatSanta {
		t.Errorf("Hat = %v, want HatSanta", e.Hat)
	}
}

func TestPettedClosesEyes(t *testing.T) {
	for _, theme := range cfg.Themes {
		e := SelectExpression(theme, true)
		if !e.EyesClosed {
			t.Errorf("%v petted: EyesClosed = false, want true", theme)
		}
		if e.Brows != BrowsNone {
			t.Errorf("%v petted: Brows = %v, want BrowsNone", theme, e.Brows)
		}
		if e.SnotBubble {
			t.Errorf("%v petted: SnotBubble = true, want false", theme)
		}
	}
}

func TestSpringHasNoWinterDecorations(t *testing.T) {
	e := SelectExpression(cfg.Spring, false)
	if e.SnotBubble || e.Shiver {
		t.Errorf("spring idle = %+v, want no bubble and no shiver", e)
	}
	if e.Mouth != MouthTooth || e.Hat != HatParty {
		t.Errorf("spring idle mouth/hat = %v/%v, want MouthTooth/HatParty", e.Mouth, e.Hat)
	}
}

func TestDerivePoseSquash(t *testing.T) {
	idle := DerivePose(cfg.Winter, false)
	petted := DerivePose(cfg.Winter, true)

	if idle.Squash != 0 || petted.Squash != 22 {
		t.Fatalf("squash = %v/%v, want 0/22", idle.Squash, petted.Squash)
	}
	tests := []struct {
		name      string
		idle, pet float64
		wantDelta float64
	}{
		{"FaceCY", idle.FaceCY, petted.FaceCY, 22},
		{"FaceRX", idle.FaceRX, petted.FaceRX, 8.8},
		{"FaceRY", idle.FaceRY, petted.FaceRY, -22},
		{"EarCY", idle.EarCY, petted.EarCY, 11},
		{"ArmCY", idle.ArmCY, petted.ArmCY, 22},
		{"HatY", idle.HatY, petted.HatY, 48.4},
		{"CollarHalfWidth", idle.CollarHalfWidth, petted.CollarHalfWidth, 20},
	}
	for _, tt := range tests {
		if got := tt.pet - tt.idle; math.Abs(got-tt.wantDelta) > 1e-9 {
			t.Errorf("%s delta = %v, want %v", tt.name, got, tt.wantDelta)
		}
	}
}

func TestEyeTargetClamped(t *testing.T) {
	for _, d := range []float64{1, 10, 119.9, 120, 500, 1e6} {
		for _, ang := range []float64{0, 1, 2.5, 4} {
			x, y, ok := EyeTarget(math.Cos(ang)*d, math.Sin(ang)*d, 20, 6)
			if !ok {
				t.Fatalf("EyeTarget at distance %v: ok = false", d)
			}
			if m := math.Hypot(x, y); m > 6+1e-9 {
				t.Errorf("|eye| at distance %v = %v, want <= 6", d, m)
			}
		}
	}
	x, _, _ := EyeTarget(40, 0, 20, 6)
	if x != 2 {
		t.Errorf("eye x at distance 40 = %v, want 2", x)
	}
}

func TestEyeTargetZeroOffset(t *testing.T) {
	if _, _, ok := EyeTarget(0, 0, 20, 6); ok {
		t.Errorf("EyeTarget(0, 0) ok = true, want false")
	}
}

func TestMotionEyesNeverExceedMax(t *testing.T) {
	m := NewMotion(cfg.Winter, 60)
	for i := 0; i < 300; i++ {
		if i%30 == 0 {
			m.LookAt(math.Cos(float64(i))*1e4, math.Sin(float64(i))*1e4)
		}
		f := m.Step(1.0 / 60)
		if got := math.Hypot(f.EyeX, f.EyeY); got > cfg.Rig.EyeMaxOffset+1e-9 {
			t.Fatalf("frame %d: |eye| = %v, want <= %v", i, got, cfg.Rig.EyeMaxOffset)
		}
	}
}

func TestMotionPettingSettles(t *testing.T) {
	m := NewMotion(cfg.Spring, 60)
	if !m.SetPetting(true) {
		t.Fatalf("SetPetting(true) = false, want changed")
	}
	if m.SetPetting(true) {
		t.Errorf("second SetPetting(true) = true, want unchanged")
	}
	var f Frame
	for i := 0; i < 240; i++ {
		f = m.Step(1.0 / 60)
	}
	want := DerivePose(cfg.Spring, true)
	if math.Abs(f.FaceCY-want.FaceCY) > 0.05 {
		t.Errorf("FaceCY = %v, want ~%v", f.FaceCY, want.FaceCY)
	}
	if !f.Expression.EyesClosed {
		t.Errorf("EyesClosed = false, want true while petted")
	}
}

func TestMotionShiverStopsWhenPetted(t *testing.T) {
	m := NewMotion(cfg.Winter, 60)
	m.SetPetting(true)
	var f Frame
	for i := 0; i < 240; i++ {
		f = m.Step(1.0 / 60)
	}
	if math.Abs(f.ShiverX) > 0.01 || math.Abs(f.ShiverY) > 0.01 {
		t.Errorf("shiver = (%v, %v), want ~0 while petted", f.ShiverX, f.ShiverY)
	}
}

func TestThemeRoundTripRestoresWinter(t *testing.T) {
	fresh := NewMotion(cfg.Winter, 60).Frame()

	m := NewMotion(cfg.Winter, 60)
	m.SetPetting(true)
	for i := 0; i < 30; i++ {
		m.Step(1.0 / 60)
	}
	m = NewMotion(cfg.Spring, 60)
	for i := 0; i < 30; i++ {
		m.Step(1.0 / 60)
	}
	m = NewMotion(cfg.Winter, 60)

	if got := m.Frame(); got != fresh {
		t.Errorf("winter frame after round trip = %+v, want %+v", got, fresh)
	}
	e := m.Frame().Expression
	if e.Mouth != MouthWorried || !e.SnotBubble || e.Hat != HatSanta {
		t.Errorf("winter expression after round trip = %+v", e)
	}
}

func TestPlaceCentresStack(t *testing.T) {
	p := Place(1280, 720)
	if p.Scale != 1 {
		t.Fatalf("Scale = %v, want 1", p.Scale)
	}
	if p.X != 340 {
		t.Errorf("X = %v, want 340", p.X)
	}
	// stack is 64 + 32 + 500 = 596 tall
	if p.TitleY != 62 || p.Y != 158 {
		t.Errorf("TitleY, Y = %v, %v, want 62, 158", p.TitleY, p.Y)
	}
	if cx, cy := p.Centre(); cx != 640 || cy != 408 {
		t.Errorf("Centre = (%v, %v), want (640, 408)", cx, cy)
	}
}

func TestPlaceShrinksOnSmallSurface(t *testing.T) {
	p := Place(300, 720)
	if p.Scale != 0.5 {
		t.Fatalf("Scale = %v, want 0.5", p.Scale)
	}
	if _, _, w, _ := p.Bounds(); w != 300 {
		t.Errorf("width = %v, want 300", w)
	}
}

func TestPlaceEmptySurface(t *testing.T) {
	if p := Place(0, 0); p.Scale != 0 {
		t.Errorf("Scale = %v, want 0", p.Scale)
	}
}
