// Package particles simulates the recycling snow/petal field and its
// pointer repulsion. Step is free of drawing so the physics can be tested on
// its own.
package particles

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/gamemath"
)

// Particle is one snowflake or petal.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Size      float64
	Angle     float64
	Spin      float64 // rotation per frame, petals only
	HueShift  float64
	DriftSeed float64
}

// Pointer is the decayed pointer sample fed to the force field.
type Pointer struct {
	X, Y   float64
	VX, VY float64
	Seen   bool // a move sample has been recorded
}

// Params are the constants fixed for the life of one field.
type Params struct {
	Kind         cfg.ParticleKind
	Count        int
	SizeMin      float64
	SizeRange    float64
	FallMin      float64
	FallRange    float64
	MinFallSpeed float64
	Field        cfg.ParticleConfig
}

// ParamsFor picks the particle constants for a theme.
func ParamsFor(theme cfg.Theme) Params {
	p := cfg.PaletteFor(theme)
	return Params{
		Kind:         p.Particle,
		Count:        p.ParticleCount,
		SizeMin:      p.SizeMin,
		SizeRange:    p.SizeRange,
		FallMin:      p.FallMin,
		FallRange:    p.FallRange,
		MinFallSpeed: p.MinFallSpeed,
		Field:        cfg.Particles,
	}
}

// State is the whole field between frames.
type State struct {
	Params        Params
	Width, Height float64
	Frame         int
	Particles     []Particle
	Pointer       Pointer
}

// New seeds a fresh batch of Params.Count particles over the surface.
func New(params Params, width, height float64, rng *rand.Rand) State {
	s := State{
		Params:    params,
		Width:     width,
		Height:    height,
		Particles: make([]Particle, params.Count),
		Pointer:   Pointer{X: params.Field.PointerRestX, Y: params.Field.PointerRestY},
	}
	for i := range s.Particles {
		s.Particles[i] = Particle{
			X:         rng.Float64() * width,
			Y:         rng.Float64() * height,
			Size:      params.SizeMin + rng.Float64()*params.SizeRange,
			VX:        (rng.Float64() - 0.5) * 2,
			VY:        params.FallMin + rng.Float64()*params.FallRange,
			Angle:     rng.Float64() * math.Pi * 2,
			Spin:      (rng.Float64() - 0.5) * params.Field.SpinRange,
			HueShift:  rng.Float64() * params.Field.HueRange,
			DriftSeed: rng.Float64() * params.Field.DriftSeedMax,
		}
	}
	return s
}

// Repulsion returns the velocity impulse the pointer applies to a particle at
// (x, y). Outside the radius, and exactly on the pointer, it is zero.
func Repulsion(f *cfg.ParticleConfig, x, y float64, ptr Pointer) (ix, iy float64) {
	dx := x - ptr.X
	dy := y - ptr.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist >= f.RepelRadius || dist == 0 {
		return 0, 0
	}
	force := (f.RepelRadius - dist) / f.RepelRadius
	ix = dx/dist*force*f.RepelStrength + ptr.VX*f.PointerCoupling
	iy = dy/dist*force*f.RepelStrength + ptr.VY*f.PointerCoupling
	return ix, iy
}

// Step advances the field by one frame and returns the new state. rng is only
// used to pick a new x for particles recycled to the top.
func Step(s State, rng *rand.Rand) State {
	f := &s.Params.Field
	next := s
	next.Frame++
	next.Pointer.VX *= f.PointerDecay
	next.Pointer.VY *= f.PointerDecay

	next.Particles = make([]Particle, len(s.Particles))
	for i, p := range s.Particles {
		p.Y += p.VY
		p.X += p.VX
		if s.Params.Kind == cfg.Snow {
			p.X += math.Sin(float64(next.Frame)*f.DriftRate+p.DriftSeed) * f.DriftAmount
		} else {
			p.Angle += p.Spin
		}

		ix, iy := Repulsion(f, p.X, p.Y, next.Pointer)
		p.VX += ix
		p.VY += iy

		p.VX *= f.DampX
		p.VY = math.Max(s.Params.MinFallSpeed, p.VY*f.DampY+f.Gravity)

		if p.Y > s.Height+f.Margin {
			p.Y = -f.Margin
			p.X = rng.Float64() * s.Width
		}
		p.X = gamemath.WrapOutside(p.X, s.Width, f.Margin)
		next.Particles[i] = p
	}
	return next
}

// MovePointer records a pointer-move sample. The velocity is the difference
// to the previous sample and is left at zero for the very first one.
func MovePointer(s State, x, y float64) State {
	if s.Pointer.Seen {
		s.Pointer.VX = x - s.Pointer.X
		s.Pointer.VY = y - s.Pointer.Y
	}
	s.Pointer.X = x
	s.Pointer.Y = y
	s.Pointer.Seen = true
	return s
}

// Resize changes the surface the field recycles within. Particles keep their
// positions.
func Resize(s State, width, height float64) State {
	s.Width = width
	s.Height = height
	return s
}
