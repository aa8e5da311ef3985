package scenery

import (
	"math"
	"math/rand"
	"testing"

	cfg "github.com/automoto/seasonscape/config"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestGenerateTreesCountSideAndOrder(t *testing.T) {
	sizes := [][2]float64{{1280, 720}, {800, 600}, {1920, 1080}, {320, 480}}
	for _, sz := range sizes {
		l := NewLayout(&cfg.Scene, sz[0], sz[1])
		trees := GenerateTrees(&cfg.Scene, l, 66, newRand())

		if len(trees) != 66 {
			t.Fatalf("%vx%v: len = %d, want 66", sz[0], sz[1], len(trees))
		}
		for i, tr := range trees {
			wantSide := Left
			if tr.Index%2 == 1 {
				wantSide = Right
			}
			if tr.Side != wantSide {
				t.Errorf("%vx%v: tree %d (index %d) side = %d, want %d", sz[0], sz[1], i, tr.Index, tr.Side, wantSide)
			}
			// Pairs share a depth, so the sorted order still alternates.
			if i%2 == 0 && tr.Side != Left {
				t.Errorf("%vx%v: sorted tree %d side = %d, want left", sz[0], sz[1], i, tr.Side)
			}
			if i > 0 && trees[i-1].Scale > tr.Scale {
				t.Errorf("%vx%v: scale[%d] = %v > scale[%d] = %v", sz[0], sz[1], i-1, trees[i-1].Scale, i, tr.Scale)
			}
		}
	}
}

func TestGenerateTreesDeterministicWithSeed(t *testing.T) {
	l := NewLayout(&cfg.Scene, 1280, 720)
	a := GenerateTrees(&cfg.Scene, l, 66, newRand())
	b := GenerateTrees(&cfg.Scene, l, 66, newRand())
	for i := range a {
		if a[i].X != b[i].X || a[i].TrunkSway != b[i].TrunkSway || len(a[i].Branches) != len(b[i].Branches) {
			t.Fatalf("tree %d differs between runs with the same seed", i)
		}
	}
}

func TestTreeLayoutDepth(t *testing.T) {
	l := NewLayout(&cfg.Scene, 1000, 800)
	trees := GenerateTrees(&cfg.Scene, l, 66, newRand())

	first := trees[0]
	if first.Scale != cfg.Scene.TreeScaleMin {
		t.Errorf("nearest-to-horizon scale = %v, want %v", first.Scale, cfg.Scene.TreeScaleMin)
	}
	if first.Y != l.VanishingY {
		t.Errorf("nearest-to-horizon y = %v, want vanishing point %v", first.Y, l.VanishingY)
	}
	// At step 0 there is no jitter, so the first pair sits exactly 10px outside the road.
	if want := l.RoadTopLeft - cfg.Scene.TreeOutwardBase; first.X != want {
		t.Errorf("left x = %v, want %v", first.X, want)
	}
	if want := l.RoadTopRight + cfg.Scene.TreeOutwardBase; trees[1].X != want {
		t.Errorf("right x = %v, want %v", trees[1].X, want)
	}

	last := trees[len(trees)-1]
	if last.Scale >= cfg.Scene.TreeScaleMax {
		t.Errorf("max scale = %v, want < %v", last.Scale, cfg.Scene.TreeScaleMax)
	}
	if last.Y >= l.TreeBottomY || last.Y <= l.Height {
		t.Errorf("nearest tree y = %v, want between %v and %v", last.Y, l.Height, l.TreeBottomY)
	}
}

func TestGenerateTreeRanges(t *testing.T) {
	rng := newRand()
	for i := 0; i < 500; i++ {
		side := Left
		if i%2 == 1 {
			side = Right
		}
		tr := GenerateTree(&cfg.Scene, 0, 0, 1, side, rng)

		if tr.TrunkSway < -22.5 || tr.TrunkSway >= 22.5 {
			t.Fatalf("sway = %v out of range", tr.TrunkSway)
		}
		if tr.Height < 1.3 || tr.Height >= 1.8 {
			t.Fatalf("height = %v out of range", tr.Height)
		}
		if tr.Thickness < 0.9 || tr.Thickness >= 1.2 {
			t.Fatalf("thickness = %v out of range", tr.Thickness)
		}
		if n := len(tr.Branches); n < 4 || n > 6 {
			t.Fatalf("branches = %d, want 4..6", n)
		}
		if tr.CanopySeed < 0 || tr.CanopySeed >= 100 {
			t.Fatalf("canopy seed = %v out of range", tr.CanopySeed)
		}
		base := 0.0
		if side == Left {
			base = math.Pi
		}
		for j, b := range tr.Branches {
			if want := -120 - 35*float64(j); b.Y != want {
				t.Fatalf("branch %d y = %v, want %v", j, b.Y, want)
			}
			if b.Angle < base-1.1 || b.Angle >= base+0.1 {
				t.Fatalf("branch %d angle = %v, want in [%v, %v)", j, b.Angle, base-1.1, base+0.1)
			}
			if b.Length < 60 || b.Length >= 120 {
				t.Fatalf("branch %d length = %v out of range", j, b.Length)
			}
		}
	}
}

func TestCanopyBlobs(t *testing.T) {
	tr := Tree{CanopySeed: 0}
	blobs := tr.CanopyBlobs(16)
	if len(blobs) != 16 {
		t.Fatalf("len = %d, want 16", len(blobs))
	}
	// Angle 0 with seed 0: dist 55, radius 65.
	if blobs[0].X != 55 || blobs[0].Y != -300 || blobs[0].R != 65 {
		t.Errorf("blob 0 = %+v, want {55 -300 65}", blobs[0])
	}
}

func TestResizeRebuildsTreesOnly(t *testing.T) {
	rng := newRand()
	s := New(&cfg.Scene, 1280, 720, rng)
	stars, orbs := s.Stars, s.Orbs

	s = Resize(&cfg.Scene, s, 640, 480, rng)
	if s.Layout.Width != 640 || s.Layout.Height != 480 {
		t.Errorf("layout = %vx%v, want 640x480", s.Layout.Width, s.Layout.Height)
	}
	if len(s.Trees) != cfg.Scene.TreeCount {
		t.Errorf("trees = %d, want %d", len(s.Trees), cfg.Scene.TreeCount)
	}
	if &s.Stars[0] != &stars[0] || &s.Orbs[0] != &orbs[0] {
		t.Error("resize should keep stars and orbs")
	}
}

func TestStepIsPureAndKeepsCounts(t *testing.T) {
	s := New(&cfg.Scene, 1280, 720, newRand())
	phase := s.Stars[0].Phase
	x := s.Orbs[0].X

	next := Step(&cfg.Scene, s, cfg.Winter)
	if s.Frame != 0 || s.Stars[0].Phase != phase || s.Orbs[0].X != x {
		t.Error("Step mutated its input")
	}
	if next.Frame != 1 {
		t.Errorf("frame = %d, want 1", next.Frame)
	}
	if got := next.Stars[0].Phase - phase; math.Abs(got-cfg.Scene.StarBlinkStep) > 1e-12 {
		t.Errorf("phase advanced by %v, want %v", got, cfg.Scene.StarBlinkStep)
	}
	if len(next.Stars) != cfg.Scene.StarCount || len(next.Orbs) != cfg.Scene.OrbCount {
		t.Errorf("counts = %d/%d, want %d/%d", len(next.Stars), len(next.Orbs), cfg.Scene.StarCount, cfg.Scene.OrbCount)
	}
}

func TestOrbWrapsWithOwnRadius(t *testing.T) {
	o := Orb{X: 1000 + 150, Y: 10, VX: 0.2, Size: 150}
	o = stepOrb(o, 1000, 500)
	if o.X != -150 {
		t.Errorf("x = %v, want -150", o.X)
	}
	o = Orb{X: 10, Y: -150, VY: -0.1, Size: 150}
	o = stepOrb(o, 1000, 500)
	if o.Y != 650 {
		t.Errorf("y = %v, want 650", o.Y)
	}
}

func TestStarAlphaRange(t *testing.T) {
	for p := 0.0; p < 10; p += 0.1 {
		a := Star{Phase: p}.Alpha(0.6)
		if a < 0 || a > 0.6 {
			t.Fatalf("alpha(%v) = %v, want [0, 0.6]", p, a)
		}
	}
}

func TestStepHoldsStarPhaseInSpring(t *testing.T) {
	s := New(&cfg.Scene, 1280, 720, newRand())
	phase := s.Stars[0].Phase
	x := s.Orbs[0].X

	next := Step(&cfg.Scene, s, cfg.Spring)
	if next.Stars[0].Phase != phase {
		t.Errorf("spring phase = %v, want %v", next.Stars[0].Phase, phase)
	}
	if next.Frame != 1 {
		t.Errorf("frame = %d, want 1", next.Frame)
	}
	if s.Orbs[0].VX != 0 && next.Orbs[0].X == x {
		t.Errorf("orb did not drift in spring")
	}
}
