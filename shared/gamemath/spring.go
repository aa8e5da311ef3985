package gamemath

import "github.com/charmbracelet/harmonica"

// SpringField steps a fixed set of scalar values toward their targets with a
// shared damped spring.
type SpringField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

// NewSpringField creates n springs stepped at fps with the given stiffness and damping.
func NewSpringField(n, fps int, stiffness, damping float64) *SpringField {
	freq, ratio := SpringParams(stiffness, damping)
	return &SpringField{
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, ratio),
		pos:    make([]float64, n),
		vel:    make([]float64, n),
	}
}

// Set places spring i at rest on v.
func (s *SpringField) Set(i int, v float64) {
	s.pos[i] = v
	s.vel[i] = 0
}

// Value returns the current position of spring i.
func (s *SpringField) Value(i int) float64 {
	return s.pos[i]
}

// Step advances spring i one frame toward target and returns its new position.
func (s *SpringField) Step(i int, target float64) float64 {
	p, v := s.spring.Update(s.pos[i], s.vel[i], target)
	s.pos[i] = p
	s.vel[i] = v
	return p
}
