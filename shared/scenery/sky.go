package scenery

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/gamemath"
)

// Star is a blinking point of light. Only winter draws them.
type Star struct {
	X, Y  float64
	Phase float64
	Size  float64
}

// Orb is a large soft glow drifting across the sky.
type Orb struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
}

// NewStars scatters n stars over a width x height area.
func NewStars(c *cfg.SceneConfig, n int, width, height float64, rng *rand.Rand) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Phase: rng.Float64() * math.Pi,
			Size:  c.StarSizeMin + rng.Float64()*c.StarSizeRange,
		}
	}
	return stars
}

// NewOrbs scatters n orbs over a width x height area.
func NewOrbs(c *cfg.SceneConfig, n int, width, height float64, rng *rand.Rand) []Orb {
	orbs := make([]Orb, n)
	for i := range orbs {
		orbs[i] = Orb{
			X:       rng.Float64() * width,
			Y:       rng.Float64() * height,
			Size:    c.OrbSizeMin + rng.Float64()*c.OrbSizeRange,
			VX:      (rng.Float64() - 0.5) * c.OrbSpeed,
			VY:      (rng.Float64() - 0.5) * c.OrbSpeed,
			Opacity: c.OrbOpacityMin + rng.Float64()*c.OrbOpacityRng,
		}
	}
	return orbs
}

// Alpha is the star's current opacity, scaled to max.
func (s Star) Alpha(max float64) float64 {
	return (math.Sin(s.Phase) + 1) / 2 * max
}

// Alpha is the orb's pulsing opacity at frame, before the theme multiplier.
func (o Orb) Alpha(c *cfg.SceneConfig, frame int) float64 {
	return o.Opacity + math.Sin(float64(frame)*c.OrbPulseRate+o.Size)*c.OrbPulseAmount
}

// stepOrb integrates one orb and wraps it once it is fully outside the
// surface, using its own radius as the margin.
func stepOrb(o Orb, width, height float64) Orb {
	o.X = gamemath.WrapOutside(o.X+o.VX, width, o.Size)
	o.Y = gamemath.WrapOutside(o.Y+o.VY, height, o.Size)
	return o
}
