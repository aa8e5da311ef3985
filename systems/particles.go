package systems

import (
	"image/color"

	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/particles"
	"github.com/automoto/seasonscape/systems/factory"
	"github.com/automoto/seasonscape/tags"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// shadowAlpha is the opacity of the coloured glow under each particle
const shadowAlpha = 0.35

var (
	petalVein  = color.NRGBA{R: 255, G: 255, B: 255, A: 77}
	petalPaint painter
)

// StartParticles starts the particle loop for theme. It returns nil and
// registers nothing when there is no surface or the loop already runs.
func StartParticles(e *ecs.ECS, theme cfg.Theme) *donburi.Entry {
	host := GetOrCreateHost(e)
	if !SurfaceAvailable(host) {
		return nil
	}
	if _, ok := tags.ParticleField.First(e.World); ok {
		return nil
	}
	entry := factory.CreateParticleField(e, theme, host.Width, host.Height, newLoopRand())
	runLoop(e, entry, stepParticles,
		loopListener{kind: components.EventResize, fn: resizeParticles},
		loopListener{kind: components.EventPointerMove, fn: pointerParticles},
	)
	return entry
}

// StopParticles tears the particle loop down.
func StopParticles(e *ecs.ECS) {
	if entry, ok := tags.ParticleField.First(e.World); ok {
		stopLoop(e, entry)
	}
}

func stepParticles(e *ecs.ECS, entry *donburi.Entry) {
	f := components.ParticleField.Get(entry)
	f.State = particles.Step(f.State, f.Rng)
}

func resizeParticles(e *ecs.ECS, entry *donburi.Entry, ev components.Event) {
	f := components.ParticleField.Get(entry)
	f.State = particles.Resize(f.State, float64(ev.Width), float64(ev.Height))
}

func pointerParticles(e *ecs.ECS, entry *donburi.Entry, ev components.Event) {
	f := components.ParticleField.Get(entry)
	f.State = particles.MovePointer(f.State, ev.X, ev.Y)
}

// DrawParticles paints snow as soft glowing discs and petals as rotated
// two-lobe shapes with a pale centre vein.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	tags.ParticleField.Each(e.World, func(entry *donburi.Entry) {
		f := components.ParticleField.Get(entry)
		p := cfg.PaletteFor(components.Loop.Get(entry).Theme)
		shadow := glowSprite(glowOrb)

		for i := range f.State.Particles {
			pt := &f.State.Particles[i]
			drawSprite(screen, shadow, pt.X, pt.Y, pt.Size+p.ShadowBlur, 0, p.ParticleGlow, shadowAlpha)
			if f.State.Params.Kind == cfg.Snow {
				drawSprite(screen, glowSprite(glowSnow), pt.X, pt.Y, pt.Size, 0, cfg.White, 1)
				continue
			}
			drawPetal(screen, pt, p.PetalBaseHue)
		}
	})
}

func drawPetal(screen *ebiten.Image, pt *particles.Particle, baseHue float64) {
	s := float32(pt.Size)
	petalPaint.geo.Reset()
	petalPaint.geo.Rotate(pt.Angle)
	petalPaint.geo.Translate(pt.X, pt.Y)

	var body vector.Path
	body.MoveTo(0, -s)
	body.CubicTo(s, -s, s, s, 0, s)
	body.CubicTo(-s, s, -s, -s, 0, -s)
	body.Close()
	petalPaint.fill(screen, &body, gg.HSL(baseHue+pt.HueShift, 1, 0.85).Color())

	var vein vector.Path
	vein.MoveTo(0, -s)
	vein.LineTo(0, s)
	petalPaint.stroke(screen, &vein, 1, petalVein)
}
