package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/automoto/seasonscape/assets"
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/scenery"
	"github.com/automoto/seasonscape/systems/factory"
	"github.com/automoto/seasonscape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartScenery starts the backdrop loop for theme. It returns nil and
// registers nothing when there is no surface or the loop already runs.
func StartScenery(e *ecs.ECS, theme cfg.Theme) *donburi.Entry {
	host := GetOrCreateHost(e)
	if !SurfaceAvailable(host) {
		return nil
	}
	if _, ok := tags.Scenery.First(e.World); ok {
		return nil
	}
	entry := factory.CreateScenery(e, theme, host.Width, host.Height, newLoopRand())
	runLoop(e, entry, stepScenery, loopListener{kind: components.EventResize, fn: resizeScenery})
	return entry
}

// StopScenery tears the backdrop loop down and releases its baked layers.
func StopScenery(e *ecs.ECS) {
	entry, ok := tags.Scenery.First(e.World)
	if !ok {
		return
	}
	releaseSceneryImages(components.Scenery.Get(entry))
	stopLoop(e, entry)
}

func stepScenery(e *ecs.ECS, entry *donburi.Entry) {
	s := components.Scenery.Get(entry)
	s.State = scenery.Step(&cfg.Scene, s.State, components.Loop.Get(entry).Theme)
}

func resizeScenery(e *ecs.ECS, entry *donburi.Entry, ev components.Event) {
	s := components.Scenery.Get(entry)
	s.State = scenery.Resize(&cfg.Scene, s.State, float64(ev.Width), float64(ev.Height), s.Rng)
	s.Baked = false
}

func releaseSceneryImages(s *components.SceneryData) {
	releaseBaked(s)
	if s.Celestial != nil {
		s.Celestial.Deallocate()
		s.Celestial = nil
	}
}

func releaseBaked(s *components.SceneryData) {
	for _, img := range []*ebiten.Image{s.Sky, s.Ground} {
		if img != nil {
			img.Deallocate()
		}
	}
	s.Sky, s.Ground = nil, nil
	s.Baked = false
}

// bakeScenery rasterises the theme-static layers for the current layout.
// Failures are logged and leave those layers undrawn until the next resize.
func bakeScenery(s *components.SceneryData, theme cfg.Theme) {
	releaseBaked(s)
	s.Baked = true

	p := cfg.PaletteFor(theme)
	l := s.State.Layout

	sky, err := assets.BakeSky(p, int(l.Width), int(l.Height))
	if err != nil {
		log.Printf("Warning: failed to bake sky: %v", err)
	} else {
		s.Sky = ebiten.NewImageFromImage(sky)
	}

	ground, err := assets.BakeGround(&cfg.Scene, p, l, s.State.Trees)
	if err != nil {
		log.Printf("Warning: failed to bake ground: %v", err)
	} else {
		s.Ground = ebiten.NewImageFromImage(ground)
	}
}

// DrawScenery paints the backdrop back to front: sky, stars, moon or sun,
// orbs, then the baked road, trees and ground cover.
func DrawScenery(e *ecs.ECS, screen *ebiten.Image) {
	tags.Scenery.Each(e.World, func(entry *donburi.Entry) {
		s := components.Scenery.Get(entry)
		theme := components.Loop.Get(entry).Theme
		p := cfg.PaletteFor(theme)
		if !s.Baked {
			bakeScenery(s, theme)
		}

		drawImageAt(screen, s.Sky, 0, 0)
		if p.ShowStars {
			drawStars(screen, s.State.Stars, p.StarColor)
		}
		drawCelestial(screen, s, p)
		drawOrbs(screen, &s.State, p)
		drawImageAt(screen, s.Ground, 0, 0)
	})
}

func drawStars(screen *ebiten.Image, stars []scenery.Star, clr color.NRGBA) {
	for _, st := range stars {
		c := clr
		c.A = uint8(st.Alpha(cfg.Scene.StarMaxAlpha) * 255)
		if c.A == 0 {
			continue
		}
		vector.FillCircle(screen, float32(st.X), float32(st.Y), float32(st.Size), c, true)
	}
}

var celestialPainter painter

// drawCelestial draws the moon or sun with its halo on an offscreen image so
// the crescent cut-out only erases the disc and its own halo.
func drawCelestial(screen *ebiten.Image, s *components.SceneryData, p *cfg.Palette) {
	reach := p.CelestialRadius + p.GlowBlur
	size := int(math.Ceil(reach*2)) + 2
	if s.Celestial == nil || s.Celestial.Bounds().Dx() != size {
		if s.Celestial != nil {
			s.Celestial.Deallocate()
		}
		s.Celestial = ebiten.NewImage(size, size)
	}
	img := s.Celestial
	img.Clear()
	c := float64(size) / 2

	glow := p.GlowColor
	alpha := float64(glow.A) / 255
	glow.A = 255
	drawSprite(img, glowSprite(glowHalo), c, c, reach, 0, glow, alpha)

	var path vector.Path
	circle(&path, c, c, p.CelestialRadius)
	celestialPainter.geo.Reset()
	celestialPainter.blend = ebiten.Blend{}
	celestialPainter.fill(img, &path, p.CelestialColor)

	if p.Crescent {
		var cut vector.Path
		circle(&cut, c+p.CrescentOffsetX, c+p.CrescentOffsetY, p.CelestialRadius)
		celestialPainter.blend = ebiten.BlendDestinationOut
		celestialPainter.fill(img, &cut, color.White)
		celestialPainter.blend = ebiten.Blend{}
	}

	l := s.State.Layout
	drawImageAt(screen, img, l.Width-cfg.Scene.CelestialInset-c, cfg.Scene.CelestialY-c)
}

func drawOrbs(screen *ebiten.Image, st *scenery.State, p *cfg.Palette) {
	sprite := glowSprite(glowOrb)
	for _, o := range st.Orbs {
		a := o.Alpha(&cfg.Scene, st.Frame) * p.OrbAlphaScale
		drawSprite(screen, sprite, o.X, o.Y, o.Size, 0, p.OrbColor, a)
	}
}
