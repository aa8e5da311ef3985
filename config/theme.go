package config

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme is the active seasonal mode
type Theme int

const (
	Winter Theme = iota
	Spring
)

// Themes lists every selectable theme in control order
var Themes = []Theme{Winter, Spring}

func (t Theme) String() string {
	switch t {
	case Winter:
		return "winter"
	case Spring:
		return "spring"
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// ParseTheme converts a theme name into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "winter":
		return Winter, nil
	case "spring":
		return Spring, nil
	}
	return Winter, fmt.Errorf("unknown theme %q", s)
}

// ParticleKind selects how the particle field moves and draws its particles
type ParticleKind int

const (
	Snow ParticleKind = iota
	Petal
)

// TitleMotion selects the looping motion of the title line
type TitleMotion int

const (
	TitleShiver TitleMotion = iota
	TitleBounce
)

// Palette holds every theme-dependent constant. It is looked up once per
// frame instead of branching on the theme at each draw call.
type Palette struct {
	// Sky
	SkyInner color.NRGBA
	SkyOuter color.NRGBA

	ShowStars bool
	StarColor color.NRGBA

	// Moon or sun
	CelestialRadius float64
	CelestialColor  color.NRGBA
	GlowColor       color.NRGBA
	GlowBlur        float64
	Crescent        bool
	CrescentOffsetX float64
	CrescentOffsetY float64

	OrbColor      color.NRGBA
	OrbAlphaScale float64

	// Ground
	RoadColor     color.NRGBA
	RoadEdgeColor color.NRGBA
	GroundTop     color.NRGBA
	GroundBottom  color.NRGBA

	// Trees. Alpha is Base + Scale*treeScale.
	TrunkColor       color.NRGBA
	TrunkAlphaBase   float64
	TrunkAlphaScale  float64
	Canopy           bool
	CanopyColor      color.NRGBA
	CanopyAlphaBase  float64
	CanopyAlphaScale float64

	// Particle field
	Particle      ParticleKind
	ParticleCount int
	SizeMin       float64
	SizeRange     float64
	FallMin       float64
	FallRange     float64
	MinFallSpeed  float64
	ParticleGlow  color.NRGBA
	ShadowBlur    float64
	PetalBaseHue  float64

	// Title line
	Title       string
	TitleColor  color.NRGBA
	TitleMotion TitleMotion
}

// Palettes maps each theme to its constants
var Palettes map[Theme]*Palette

// PaletteFor returns the palette of t, falling back to winter for unknown values.
func PaletteFor(t Theme) *Palette {
	if p, ok := Palettes[t]; ok {
		return p
	}
	return Palettes[Winter]
}

func init() {
	Palettes = map[Theme]*Palette{
		Winter: {
			SkyInner: color.NRGBA{R: 0x0c, G: 0x1c, B: 0x38, A: 255},
			SkyOuter: color.NRGBA{R: 0x02, G: 0x08, B: 0x17, A: 255},

			ShowStars: true,
			StarColor: color.NRGBA{R: 255, G: 255, B: 230, A: 255},

			CelestialRadius: 40,
			CelestialColor:  color.NRGBA{R: 0xf0, G: 0xf8, B: 0xff, A: 255},
			GlowColor:       color.NRGBA{R: 200, G: 230, B: 255, A: 128},
			GlowBlur:        40,
			Crescent:        true,
			CrescentOffsetX: -15,
			CrescentOffsetY: -10,

			OrbColor:      color.NRGBA{R: 200, G: 230, B: 255, A: 255},
			OrbAlphaScale: 1,

			RoadColor:     color.NRGBA{R: 10, G: 20, B: 40, A: 230},
			RoadEdgeColor: color.NRGBA{R: 180, G: 220, B: 255, A: 64},
			GroundTop:     color.NRGBA{R: 10, G: 20, B: 40, A: 0},
			GroundBottom:  color.NRGBA{R: 5, G: 10, B: 20, A: 204},

			TrunkColor:      color.NRGBA{R: 25, G: 25, B: 40, A: 255},
			TrunkAlphaBase:  0.6,
			TrunkAlphaScale: 0.3,

			Particle:      Snow,
			ParticleCount: 150,
			SizeMin:       2,
			SizeRange:     4,
			FallMin:       0.5,
			FallRange:     1.5,
			MinFallSpeed:  0.5,
			ParticleGlow:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			ShadowBlur:    4,

			Title:       "Too cold, bear",
			TitleColor:  color.NRGBA{R: 0xdb, G: 0xea, B: 0xfe, A: 255},
			TitleMotion: TitleShiver,
		},
		Spring: {
			SkyInner: color.NRGBA{R: 0xff, G: 0xf5, B: 0xe1, A: 255},
			SkyOuter: color.NRGBA{R: 0xa0, G: 0xd8, B: 0xef, A: 255},

			CelestialRadius: 50,
			CelestialColor:  color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 255},
			GlowColor:       color.NRGBA{R: 255, G: 220, B: 100, A: 204},
			GlowBlur:        60,

			OrbColor:      color.NRGBA{R: 255, G: 240, B: 200, A: 255},
			OrbAlphaScale: 1.5,

			RoadColor:     color.NRGBA{R: 240, G: 230, B: 210, A: 204},
			RoadEdgeColor: color.NRGBA{R: 255, G: 200, B: 150, A: 102},
			GroundTop:     color.NRGBA{R: 240, G: 230, B: 210, A: 0},
			GroundBottom:  color.NRGBA{R: 220, G: 210, B: 190, A: 204},

			TrunkColor:       color.NRGBA{R: 110, G: 75, B: 50, A: 255},
			TrunkAlphaBase:   0.8,
			TrunkAlphaScale:  0.2,
			Canopy:           true,
			CanopyColor:      color.NRGBA{R: 255, G: 170, B: 190, A: 255},
			CanopyAlphaBase:  0.7,
			CanopyAlphaScale: 0.3,

			Particle:      Petal,
			ParticleCount: 80,
			SizeMin:       6,
			SizeRange:     8,
			FallMin:       1,
			FallRange:     2,
			MinFallSpeed:  1,
			ParticleGlow:  color.NRGBA{R: 0xff, G: 0xb7, B: 0xc5, A: 255},
			ShadowBlur:    8,
			PetalBaseHue:  340,

			Title:       "Smells like spring!!",
			TitleColor:  color.NRGBA{R: 0xfb, G: 0xcf, B: 0xe8, A: 255},
			TitleMotion: TitleBounce,
		},
	}
}
