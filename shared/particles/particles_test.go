package particles

import (
	"math"
	"math/rand"
	"testing"

	cfg "github.com/automoto/seasonscape/config"
)

func TestNewSeedsThemeCount(t *testing.T) {
	tests := []struct {
		theme cfg.Theme
		want  int
	}{
		{cfg.Winter, 150},
		{cfg.Spring, 80},
	}
	for _, tt := range tests {
		s := New(ParamsFor(tt.theme), 800, 600, rand.New(rand.NewSource(1)))
		if len(s.Particles) != tt.want {
			t.Errorf("%v: count = %d, want %d", tt.theme, len(s.Particles), tt.want)
		}
		if s.Pointer.X != -1000 || s.Pointer.Y != -1000 {
			t.Errorf("%v: pointer = (%v, %v), want (-1000, -1000)", tt.theme, s.Pointer.X, s.Pointer.Y)
		}
	}
}

func TestStepKeepsMinimumFallSpeed(t *testing.T) {
	for _, theme := range cfg.Themes {
		params := ParamsFor(theme)
		rng := rand.New(rand.NewSource(7))
		s := New(params, 800, 600, rng)
		for frame := 0; frame < 300; frame++ {
			// Sweep the pointer through the field to push particles upward.
			s = MovePointer(s, float64(frame*5%800), 600-float64(frame*3%600))
			s = Step(s, rng)
			for i, p := range s.Particles {
				if p.VY < params.MinFallSpeed {
					t.Fatalf("%v frame %d particle %d: vy = %v, want >= %v", theme, frame, i, p.VY, params.MinFallSpeed)
				}
			}
			if len(s.Particles) != params.Count {
				t.Fatalf("%v frame %d: count changed to %d", theme, frame, len(s.Particles))
			}
		}
	}
}

func TestRecycleBounds(t *testing.T) {
	params := ParamsFor(cfg.Winter)
	rng := rand.New(rand.NewSource(3))
	const w, h = 400.0, 300.0

	s := State{
		Params: params,
		Width:  w,
		Height: h,
		Particles: []Particle{
			{X: 200, Y: h + 19.9, VY: 1},        // falls out of the bottom
			{X: -19.5, Y: 100, VX: -1, VY: 1},   // leaves on the left
			{X: w + 19.5, Y: 100, VX: 1, VY: 1}, // leaves on the right
		},
		Pointer: Pointer{X: -1000, Y: -1000},
	}
	s.Params.Kind = cfg.Petal // no sideways drift
	next := Step(s, rng)

	bottom := next.Particles[0]
	if bottom.Y != -20 {
		t.Errorf("recycled y = %v, want -20", bottom.Y)
	}
	if bottom.X < 0 || bottom.X >= w+20 {
		t.Errorf("recycled x = %v, want [0, %v)", bottom.X, w+20)
	}
	if got := next.Particles[1].X; got != w+20 {
		t.Errorf("left wrap x = %v, want %v", got, w+20)
	}
	if got := next.Particles[2].X; got != -20 {
		t.Errorf("right wrap x = %v, want -20", got)
	}
	for i, p := range next.Particles {
		if p.Y < -20 {
			t.Errorf("particle %d y = %v, want >= -20", i, p.Y)
		}
	}
}

func TestNoRepulsionOutsideRadius(t *testing.T) {
	params := ParamsFor(cfg.Spring)
	s := State{
		Params: params,
		Width:  2000,
		Height: 2000,
		Particles: []Particle{
			{X: 500, Y: 500, VX: 0.7, VY: 2, Spin: 0.01},
			{X: 500 + 150, Y: 500, VX: -0.3, VY: 1.5},
		},
		// Just over 150px right of the second particle once it has moved.
		Pointer: Pointer{X: 800.2, Y: 501.5, VX: 40, VY: -40, Seen: true},
	}
	next := Step(s, rand.New(rand.NewSource(1)))

	for i, p := range s.Particles {
		wantVX := p.VX * params.Field.DampX
		wantVY := math.Max(params.MinFallSpeed, p.VY*params.Field.DampY+params.Field.Gravity)
		if next.Particles[i].VX != wantVX || next.Particles[i].VY != wantVY {
			t.Errorf("particle %d: v = (%v, %v), want damping only (%v, %v)",
				i, next.Particles[i].VX, next.Particles[i].VY, wantVX, wantVY)
		}
	}
}

func TestRepulsion(t *testing.T) {
	f := cfg.Particles
	ptr := Pointer{X: 0, Y: 0}

	if ix, iy := Repulsion(&f, 150, 0, ptr); ix != 0 || iy != 0 {
		t.Errorf("at radius: (%v, %v), want zero", ix, iy)
	}
	if ix, iy := Repulsion(&f, 0, 0, ptr); ix != 0 || iy != 0 {
		t.Errorf("on pointer: (%v, %v), want zero", ix, iy)
	}
	ix, iy := Repulsion(&f, 75, 0, ptr)
	if ix != 1 || iy != 0 {
		t.Errorf("half radius: (%v, %v), want (1, 0)", ix, iy)
	}

	// Pointer velocity couples into the impulse inside the radius.
	ptr.VX, ptr.VY = 10, -20
	ix, iy = Repulsion(&f, 0, 75, ptr)
	if math.Abs(ix-1) > 1e-12 || math.Abs(iy-(1-2)) > 1e-12 {
		t.Errorf("with velocity: (%v, %v), want (1, -1)", ix, iy)
	}
}

func TestPointerVelocity(t *testing.T) {
	s := New(ParamsFor(cfg.Winter), 800, 600, rand.New(rand.NewSource(1)))

	s = MovePointer(s, 100, 100)
	if s.Pointer.VX != 0 || s.Pointer.VY != 0 {
		t.Errorf("first sample velocity = (%v, %v), want zero", s.Pointer.VX, s.Pointer.VY)
	}
	s = MovePointer(s, 110, 95)
	if s.Pointer.VX != 10 || s.Pointer.VY != -5 {
		t.Errorf("velocity = (%v, %v), want (10, -5)", s.Pointer.VX, s.Pointer.VY)
	}

	s = Step(s, rand.New(rand.NewSource(1)))
	if math.Abs(s.Pointer.VX-9) > 1e-12 || math.Abs(s.Pointer.VY+4.5) > 1e-12 {
		t.Errorf("decayed velocity = (%v, %v), want (9, -4.5)", s.Pointer.VX, s.Pointer.VY)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := New(ParamsFor(cfg.Spring), 800, 600, rng)
	before := s.Particles[0]
	_ = Step(s, rng)
	if s.Particles[0] != before || s.Frame != 0 {
		t.Error("Step mutated its input")
	}
}

func TestPetalsSpinSnowDrifts(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	petal := State{Params: ParamsFor(cfg.Spring), Width: 800, Height: 600,
		Particles: []Particle{{X: 400, Y: 100, VY: 1, Angle: 1, Spin: 0.04}},
		Pointer:   Pointer{X: -1000, Y: -1000}}
	next := Step(petal, rng)
	if got := next.Particles[0].Angle; math.Abs(got-1.04) > 1e-12 {
		t.Errorf("petal angle = %v, want 1.04", got)
	}
	if next.Particles[0].X != 400 {
		t.Errorf("petal x = %v, want 400 without drift", next.Particles[0].X)
	}

	snow := State{Params: ParamsFor(cfg.Winter), Width: 800, Height: 600,
		Particles: []Particle{{X: 400, Y: 100, VY: 1, Angle: 1, Spin: 0.04, DriftSeed: 2}},
		Pointer:   Pointer{X: -1000, Y: -1000}}
	next = Step(snow, rng)
	wantX := 400 + math.Sin(1*0.03+2)*0.6
	if math.Abs(next.Particles[0].X-wantX) > 1e-12 {
		t.Errorf("snow x = %v, want %v", next.Particles[0].X, wantX)
	}
	if next.Particles[0].Angle != 1 {
		t.Errorf("snow angle = %v, want unchanged", next.Particles[0].Angle)
	}
}
