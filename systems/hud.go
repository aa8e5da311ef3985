package systems

import (
	"image/color"

	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/fonts"
	"github.com/automoto/seasonscape/shared/rig"
	"github.com/automoto/seasonscape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	titleShadowOffset = 2
	titleBaseline     = 0.75 // baseline position within the title band
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the title line above the character and the hint line at
// the bottom of the window.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	host := GetOrCreateHost(ecs)
	if !SurfaceAvailable(host) {
		return
	}
	drawTitle(ecs, screen, float64(host.Width), float64(host.Height))
	drawHint(screen, float64(host.Width), float64(host.Height))
}

func drawTitle(ecs *ecs.ECS, screen *ebiten.Image, width, height float64) {
	entry, ok := tags.Rig.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Title) {
		return
	}
	m := components.Rig.Get(entry).Motion
	frame := m.Frame()
	palette := cfg.PaletteFor(m.Theme())
	place := rig.Place(width, height)
	if place.Scale <= 0 {
		return
	}

	face := fonts.Title.Get()
	w := float64(text.BoundString(face, palette.Title).Dx()) * place.Scale
	x := (width-w)/2 + frame.TitleX*place.Scale
	y := place.TitleY + (cfg.Rig.TitleHeight*titleBaseline+frame.TitleY)*place.Scale

	drawScaledText(screen, palette.Title, face, x+titleShadowOffset, y+titleShadowOffset, place.Scale, cfg.UI.TitleShadow)
	drawScaledText(screen, palette.Title, face, x, y, place.Scale, palette.TitleColor)
}

func drawHint(screen *ebiten.Image, width, height float64) {
	if !fonts.Loaded(fonts.Hint) || cfg.UI.Hint == "" {
		return
	}
	face := fonts.Hint.Get()
	w := float64(text.BoundString(face, cfg.UI.Hint).Dx())
	drawScaledText(screen, cfg.UI.Hint, face, (width-w)/2, height-cfg.UI.HintBottom, 1, cfg.UI.HintColor)
}

// drawScaledText draws s with its baseline origin at (x, y)
func drawScaledText(screen *ebiten.Image, s string, face font.Face, x, y, scale float64, clr color.NRGBA) {
	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(x, y)
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, hudDrawOp)
}
