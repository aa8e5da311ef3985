package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string

	// Hit-test space, large enough for any window
	SpaceWidth  int
	SpaceHeight int
	SpaceCell   int
}

// SceneConfig contains backdrop generation and animation constants
type SceneConfig struct {
	// Perspective layout
	VanishingPoint   float64 // fraction of surface height
	RoadTopHalfWidth float64 // pixels either side of the centre line
	RoadBottomLeft   float64 // fraction of width (negative = off screen)
	RoadBottomRight  float64 // fraction of width
	RoadBottomDrop   float64 // pixels below the bottom edge
	RoadEdgeWidth    float64
	GroundHeight     float64

	// Tree layout
	TreeCount        int
	TreeSpanBelow    float64 // trees continue this far below the bottom edge
	TreeStepExponent float64
	TreeScaleMin     float64
	TreeScaleMax     float64
	TreeOutwardBase  float64
	TreeOutwardStep  float64
	TreeJitter       float64

	// Per-tree randomisation
	TrunkSway      float64 // full range, centred on zero
	HeightMin      float64
	HeightRange    float64
	ThicknessMin   float64
	ThicknessRange float64
	BranchMin      int
	BranchExtra    int // branches = BranchMin + [0, BranchExtra)
	BranchTop      float64
	BranchSpacing  float64
	BranchSpread   float64
	BranchBias     float64
	BranchLenMin   float64
	BranchLenRange float64
	BranchWidth    float64
	CanopySeedMax  float64
	CanopyBlobs    int

	// Sky decorations
	StarCount      int
	StarBlinkStep  float64
	StarSizeMin    float64
	StarSizeRange  float64
	StarMaxAlpha   float64
	OrbCount       int
	OrbSizeMin     float64
	OrbSizeRange   float64
	OrbSpeed       float64 // full velocity range per axis, centred on zero
	OrbOpacityMin  float64
	OrbOpacityRng  float64
	OrbPulseRate   float64
	OrbPulseAmount float64
	CelestialInset float64 // distance from the right edge
	CelestialY     float64
}

// ParticleConfig contains the force field and integration constants shared by both themes
type ParticleConfig struct {
	RepelRadius     float64
	RepelStrength   float64
	PointerCoupling float64 // fraction of pointer velocity added inside the radius
	PointerDecay    float64
	DampX           float64
	DampY           float64
	Gravity         float64
	Margin          float64 // recycle margin outside the surface
	DriftRate       float64
	DriftAmount     float64
	SpinRange       float64
	HueRange        float64
	DriftSeedMax    float64
	PointerRestX    float64 // pointer position before the first move event
	PointerRestY    float64
}

// RigConfig contains character layout, motion and colour values
type RigConfig struct {
	DesignWidth  float64
	DesignHeight float64
	TitleHeight  float64 // reserved above the figure for the title line
	TitleGap     float64

	Squash       float64
	Stiffness    float64
	Damping      float64
	EyeDamping   float64
	EyeMaxOffset float64
	EyeFalloff   float64 // pointer distance per unit of eye offset

	// Looping motion (seconds)
	ShiverX        float64
	ShiverY        float64
	ShiverSeconds  float64
	BubbleMin      float64
	BubbleMax      float64
	BubbleSeconds  float64
	HatSway        float64 // degrees
	HatSwaySeconds float64
	HatPetSway     float64
	HatPetSeconds  float64
	BounceHeight   float64
	BounceSeconds  float64
	TitleBounce    float64
	TitleSeconds   float64
	TitleShiverX   float64

	// Scruffy filter
	ScruffyFrequency float64
	ScruffyOctaves   int
	ScruffyScale     float64
	FilterMargin     float64 // fraction of the design box added on every side

	Fur         color.NRGBA
	Pajama      color.NRGBA
	Outline     color.NRGBA
	Blush       color.NRGBA
	BlushPetted color.NRGBA
	Mouth       color.NRGBA
	Tooth       color.NRGBA
	Bubble      color.NRGBA
	Shine       color.NRGBA
	Rabbit      color.NRGBA
	Hamster     color.NRGBA
	WinterHat   color.NRGBA
	SpringHat   color.NRGBA
}

// TransitionConfig contains theme cross-fade configuration
type TransitionConfig struct {
	Frames int
}

// UIConfig contains controls and text configuration
type UIConfig struct {
	ButtonWidth    int
	ButtonHeight   int
	ButtonSpacing  int
	TopMargin      int
	TitleFontSize  float64
	HintFontSize   float64
	ButtonFontSize float64
	DebugFontSize  float64
	HintBottom     float64
	Hint           string

	PanelColor       color.NRGBA
	ButtonIdle       color.NRGBA
	ButtonHover      color.NRGBA
	ButtonActive     map[Theme]color.NRGBA
	ButtonTextIdle   color.NRGBA
	ButtonTextActive color.NRGBA
	HintColor        color.NRGBA
	TitleShadow      color.NRGBA
	DebugColor       color.NRGBA
	DebugRectColor   color.NRGBA
	PauseOverlay     color.NRGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool  // draw the debug overlay
	Verbose    bool  // route rasteriser diagnostics to the log
	Seed       int64 // 0 seeds from the clock
	Fullscreen bool
	StartTheme Theme
}

// Global configuration instances
var C *Config
var Scene SceneConfig
var Particles ParticleConfig
var Rig RigConfig
var Transition TransitionConfig
var UI UIConfig
var Debug DebugConfig

// White is the shared opaque white
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Seasonscape",

		SpaceWidth:  3840,
		SpaceHeight: 2160,
		SpaceCell:   64,
	}

	Scene = SceneConfig{
		VanishingPoint:   0.4,
		RoadTopHalfWidth: 50,
		RoadBottomLeft:   -0.6,
		RoadBottomRight:  1.6,
		RoadBottomDrop:   100,
		RoadEdgeWidth:    4,
		GroundHeight:     200,

		TreeCount:        66,
		TreeSpanBelow:    200,
		TreeStepExponent: 1.2,
		TreeScaleMin:     0.3,
		TreeScaleMax:     2.1,
		TreeOutwardBase:  10,
		TreeOutwardStep:  120,
		TreeJitter:       250,

		TrunkSway:      45,
		HeightMin:      1.3,
		HeightRange:    0.5,
		ThicknessMin:   0.9,
		ThicknessRange: 0.3,
		BranchMin:      4,
		BranchExtra:    3,
		BranchTop:      -120,
		BranchSpacing:  35,
		BranchSpread:   1.2,
		BranchBias:     0.5,
		BranchLenMin:   60,
		BranchLenRange: 60,
		BranchWidth:    4.5,
		CanopySeedMax:  100,
		CanopyBlobs:    16,

		StarCount:      100,
		StarBlinkStep:  0.03,
		StarSizeMin:    0.5,
		StarSizeRange:  1.5,
		StarMaxAlpha:   0.6,
		OrbCount:       15,
		OrbSizeMin:     100,
		OrbSizeRange:   200,
		OrbSpeed:       0.4,
		OrbOpacityMin:  0.03,
		OrbOpacityRng:  0.05,
		OrbPulseRate:   0.02,
		OrbPulseAmount: 0.02,
		CelestialInset: 120,
		CelestialY:     100,
	}

	Particles = ParticleConfig{
		RepelRadius:     150,
		RepelStrength:   2,
		PointerCoupling: 0.1,
		PointerDecay:    0.9,
		DampX:           0.98,
		DampY:           0.99,
		Gravity:         0.05,
		Margin:          20,
		DriftRate:       0.03,
		DriftAmount:     0.6,
		SpinRange:       0.1,
		HueRange:        20,
		DriftSeedMax:    100,
		PointerRestX:    -1000,
		PointerRestY:    -1000,
	}

	Rig = RigConfig{
		DesignWidth:  600,
		DesignHeight: 500,
		TitleHeight:  64,
		TitleGap:     32,

		Squash:       22,
		Stiffness:    300,
		Damping:      20,
		EyeDamping:   30,
		EyeMaxOffset: 6,
		EyeFalloff:   20,

		ShiverX:        1.5,
		ShiverY:        1,
		ShiverSeconds:  0.2,
		BubbleMin:      10,
		BubbleMax:      14,
		BubbleSeconds:  1.5,
		HatSway:        5,
		HatSwaySeconds: 2,
		HatPetSway:     10,
		HatPetSeconds:  0.5,
		BounceHeight:   15,
		BounceSeconds:  0.4,
		TitleBounce:    15,
		TitleSeconds:   0.6,
		TitleShiverX:   2,

		ScruffyFrequency: 0.05,
		ScruffyOctaves:   3,
		ScruffyScale:     4,
		FilterMargin:     0.2,

		Fur:         color.NRGBA{R: 0xfb, G: 0xe5, B: 0xa2, A: 255},
		Pajama:      color.NRGBA{R: 0xa3, G: 0xcc, B: 0xff, A: 255},
		Outline:     color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255},
		Blush:       color.NRGBA{R: 255, G: 100, B: 150, A: 153},
		BlushPetted: color.NRGBA{R: 255, G: 50, B: 100, A: 191},
		Mouth:       color.NRGBA{R: 0xff, G: 0x76, B: 0x75, A: 255},
		Tooth:       color.NRGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 255},
		Bubble:      color.NRGBA{R: 100, G: 210, B: 255, A: 178},
		Shine:       color.NRGBA{R: 255, G: 255, B: 255, A: 204},
		Rabbit:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Hamster:     color.NRGBA{R: 0xd1, G: 0xcc, B: 0xc0, A: 255},
		WinterHat:   color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 255},
		SpringHat:   color.NRGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 255},
	}

	Transition = TransitionConfig{
		Frames: 24,
	}

	UI = UIConfig{
		ButtonWidth:    130,
		ButtonHeight:   40,
		ButtonSpacing:  8,
		TopMargin:      32,
		TitleFontSize:  44,
		HintFontSize:   14,
		ButtonFontSize: 18,
		DebugFontSize:  12,
		HintBottom:     48,
		Hint:           "Press and hold on the bear to pet it!",

		PanelColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 13},
		ButtonIdle:  color.NRGBA{R: 0, G: 0, B: 0, A: 0},
		ButtonHover: color.NRGBA{R: 255, G: 255, B: 255, A: 26},
		ButtonActive: map[Theme]color.NRGBA{
			Winter: {R: 0x7c, G: 0x7b, B: 0xfe, A: 255},
			Spring: {R: 0x70, G: 0x68, B: 0xe4, A: 255},
		},
		ButtonTextIdle:   color.NRGBA{R: 255, G: 255, B: 255, A: 178},
		ButtonTextActive: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		HintColor:        color.NRGBA{R: 255, G: 255, B: 255, A: 128},
		TitleShadow:      color.NRGBA{R: 0, G: 0, B: 0, A: 128},
		DebugColor:       color.NRGBA{R: 255, G: 255, B: 0, A: 255},
		DebugRectColor:   color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		PauseOverlay:     color.NRGBA{R: 0, G: 0, B: 0, A: 120},
	}

	Debug = DebugConfig{
		StartTheme: Winter,
	}
}
