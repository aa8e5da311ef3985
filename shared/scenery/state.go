package scenery

import (
	"math/rand"

	cfg "github.com/automoto/seasonscape/config"
)

// State is everything the backdrop animates between frames.
type State struct {
	Layout Layout
	Frame  int
	Trees  []Tree
	Stars  []Star
	Orbs   []Orb
}

// New creates a backdrop for a surface. Stars and orbs are scattered once
// over the initial size and keep their count for the life of the state.
func New(c *cfg.SceneConfig, width, height float64, rng *rand.Rand) State {
	s := State{
		Stars: NewStars(c, c.StarCount, width, height, rng),
		Orbs:  NewOrbs(c, c.OrbCount, width, height, rng),
	}
	return Resize(c, s, width, height, rng)
}

// Resize recomputes the layout and rebuilds the whole tree population.
func Resize(c *cfg.SceneConfig, s State, width, height float64, rng *rand.Rand) State {
	s.Layout = NewLayout(c, width, height)
	s.Trees = GenerateTrees(c, s.Layout, c.TreeCount, rng)
	return s
}

// Step advances the frame counter, orb drift and, while the winter sky is
// up, the star blink phases. The input state is left untouched.
func Step(c *cfg.SceneConfig, s State, theme cfg.Theme) State {
	next := s
	next.Frame++

	next.Stars = make([]Star, len(s.Stars))
	for i, st := range s.Stars {
		if theme == cfg.Winter {
			st.Phase += c.StarBlinkStep
		}
		next.Stars[i] = st
	}

	next.Orbs = make([]Orb, len(s.Orbs))
	for i, o := range s.Orbs {
		next.Orbs[i] = stepOrb(o, s.Layout.Width, s.Layout.Height)
	}
	return next
}
