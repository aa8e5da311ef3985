package rig

import (
	"math"

	cfg "github.com/automoto/seasonscape/config"
)

// Placement is where the design box lands on a surface.
type Placement struct {
	X, Y   float64 // top-left of the design box
	Scale  float64
	TitleY float64 // top of the title line
}

// Place centres the title line and the design box as one stack. The stack
// shrinks to fit small surfaces but never grows past its design size.
func Place(width, height float64) Placement {
	c := &cfg.Rig
	stackH := c.TitleHeight + c.TitleGap + c.DesignHeight
	scale := math.Min(1, math.Min(width/c.DesignWidth, height/stackH))
	if scale <= 0 {
		return Placement{}
	}
	top := (height - stackH*scale) / 2
	return Placement{
		X:      (width - c.DesignWidth*scale) / 2,
		Y:      top + (c.TitleHeight+c.TitleGap)*scale,
		Scale:  scale,
		TitleY: top,
	}
}

// Bounds returns the bounding rectangle of the design box on the surface.
func (p Placement) Bounds() (x, y, w, h float64) {
	return p.X, p.Y, cfg.Rig.DesignWidth * p.Scale, cfg.Rig.DesignHeight * p.Scale
}

// Centre returns the centre of the design box on the surface.
func (p Placement) Centre() (x, y float64) {
	x, y, w, h := p.Bounds()
	return x + w/2, y + h/2
}
