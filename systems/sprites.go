package systems

import (
	"log"

	"github.com/automoto/seasonscape/assets"
	"github.com/hajimehoshi/ebiten/v2"
)

// glowRadius is the baked radius of every glow sprite; draws scale it
const glowRadius = 64

type glowKind int

const (
	glowOrb glowKind = iota
	glowSnow
	glowHalo
)

var (
	glowStops = map[glowKind][]assets.GlowStop{
		glowOrb:  assets.OrbGlow,
		glowSnow: assets.SnowGlow,
		glowHalo: assets.HaloGlow,
	}
	glowSprites = map[glowKind]*ebiten.Image{}
)

// glowSprite bakes the sprite on first use. A failed bake is logged once and
// leaves the layer undrawn.
func glowSprite(kind glowKind) *ebiten.Image {
	if img, ok := glowSprites[kind]; ok {
		return img
	}
	baked, err := assets.BakeGlow(glowRadius, glowStops[kind])
	if err != nil {
		log.Printf("Warning: failed to bake glow sprite %d: %v", kind, err)
		glowSprites[kind] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(baked)
	glowSprites[kind] = img
	return img
}
