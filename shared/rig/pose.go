// Package rig derives the character's pose and expression from the theme and
// the petting flag, and smooths it between frames.
package rig

import (
	"math"

	cfg "github.com/automoto/seasonscape/config"
)

// Mouth is the mouth shape variant.
type Mouth int

const (
	MouthWorried Mouth = iota // closed chevron
	MouthTooth                // open with a tooth
	MouthOval                 // open, surprised
)

// Brows is the eyebrow variant.
type Brows int

const (
	BrowsNone Brows = iota
	BrowsAngry
	BrowsSoft
)

// Hat is the theme accessory.
type Hat int

const (
	HatSanta Hat = iota
	HatParty
)

// Expression is the discrete part of the figure picked from the table.
type Expression struct {
	Mouth            Mouth
	Brows            Brows
	EyesClosed       bool
	SnotBubble       bool
	Shiver           bool
	Hat              Hat
	HatSways         bool
	BlushStrong      bool
	CompanionsBounce bool
}

type expressionKey struct {
	theme   cfg.Theme
	petting bool
}

// Expressions is keyed by (theme, petting).
var Expressions = map[expressionKey]Expression{
	{cfg.Winter, false}: {
		Mouth:      MouthWorried,
		Brows:      BrowsAngry,
		SnotBubble: true,
		Shiver:     true,
		Hat:        HatSanta,
	},
	{cfg.Winter, true}: {
		Mouth:            MouthOval,
		EyesClosed:       true,
		Hat:              HatSanta,
		BlushStrong:      true,
		CompanionsBounce: true,
	},
	{cfg.Spring, false}: {
		Mouth:    MouthTooth,
		Brows:    BrowsSoft,
		Hat:      HatParty,
		HatSways: true,
	},
	{cfg.Spring, true}: {
		Mouth:            MouthOval,
		EyesClosed:       true,
		Hat:              HatParty,
		HatSways:         true,
		BlushStrong:      true,
		CompanionsBounce: true,
	},
}

// SelectExpression looks up the expression for a theme and petting state.
func SelectExpression(theme cfg.Theme, petting bool) Expression {
	if e, ok := Expressions[expressionKey{theme, petting}]; ok {
		return e
	}
	return Expressions[expressionKey{cfg.Winter, petting}]
}

// Pose holds the geometry targets of the figure in its 600x500 design box.
// Every value keys off the single squash scalar.
type Pose struct {
	Squash          float64
	FaceCY          float64
	FaceRX          float64
	FaceRY          float64
	EarCY           float64
	EarRY           float64
	CollarY         float64 // offset of the collar line
	CollarHalfWidth float64
	ButtonCY        float64
	ArmCY           float64
	FeatureY        float64 // offset of eyes, mouth, brows, blush and bubble
	HatY            float64
	Expression      Expression
}

// DerivePose returns the pose targets for a theme and petting state.
func DerivePose(theme cfg.Theme, petting bool) Pose {
	s := 0.0
	if petting {
		s = cfg.Rig.Squash
	}
	p := Pose{
		Squash:          s,
		FaceCY:          275 + s,
		FaceRX:          158 + s*0.4,
		FaceRY:          115 - s,
		EarCY:           180 + s*0.5,
		EarRY:           42 - s*0.3,
		CollarHalfWidth: 146,
		ButtonCY:        343 + s*0.8,
		ArmCY:           407 + s,
		FeatureY:        s,
		HatY:            s * 2.2,
		Expression:      SelectExpression(theme, petting),
	}
	if petting {
		p.CollarY = s * 0.8
		p.CollarHalfWidth = 166
	}
	return p
}

// EyeTarget maps the pointer offset from the figure centre to an eye offset:
// the pointer direction scaled by min(distance/falloff, limit). A zero offset
// has no direction and reports ok = false so the caller keeps its target.
func EyeTarget(dx, dy, falloff, limit float64) (ex, ey float64, ok bool) {
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, false
	}
	m := math.Min(dist/falloff, limit)
	return dx / dist * m, dy / dist * m, true
}
