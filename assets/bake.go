package assets

import (
	"fmt"
	"image"
	"image/color"

	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/scenery"
	"github.com/gogpu/gg"
)

// GlowStop is one alpha stop of a radial glow sprite
type GlowStop struct {
	Offset float64
	Alpha  float64
}

var (
	// OrbGlow fades linearly from the centre to the rim
	OrbGlow = []GlowStop{{0, 1}, {1, 0}}
	// SnowGlow is the soft snowflake disc
	SnowGlow = []GlowStop{{0, 0.9}, {0.5, 0.4}, {1, 0}}
	// HaloGlow is the blur around the moon or sun
	HaloGlow = []GlowStop{{0, 1}, {0.45, 0.6}, {1, 0}}
)

// ggColor converts a straight-alpha colour without premultiplying it.
func ggColor(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func withAlpha(c color.NRGBA, a float64) gg.RGBA {
	out := ggColor(c)
	out.A = a
	return out
}

// BakeGlow rasterises a white radial sprite of the given radius. Tint it with
// a colour scale when drawing.
func BakeGlow(radius int, stops []GlowStop) (image.Image, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("glow radius %d", radius)
	}
	size := radius * 2
	dc := gg.NewContext(size, size)
	defer dc.Close()

	r := float64(radius)
	brush := gg.NewRadialGradientBrush(r, r, 0, r)
	for _, s := range stops {
		brush.AddColorStop(s.Offset, gg.RGBA2(1, 1, 1, s.Alpha))
	}
	dc.SetFillBrush(brush)
	dc.DrawCircle(r, r, r)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("failed to fill glow: %w", err)
	}
	return dc.Image(), nil
}

// BakeSky rasterises the radial sky gradient, centred on the surface and
// reaching the outer stop one surface width out.
func BakeSky(p *cfg.Palette, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sky size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	w, h := float64(width), float64(height)
	dc.SetFillBrush(gg.NewRadialGradientBrush(w/2, h/2, 0, w).
		AddColorStop(0, ggColor(p.SkyInner)).
		AddColorStop(1, ggColor(p.SkyOuter)))
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("failed to fill sky: %w", err)
	}
	return dc.Image(), nil
}

// BakeGround rasterises the theme-static foreground of the backdrop: the
// road with its edge highlights, the trees back to front and the ground
// cover band.
func BakeGround(c *cfg.SceneConfig, p *cfg.Palette, l scenery.Layout, trees []scenery.Tree) (image.Image, error) {
	width, height := int(l.Width), int(l.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ground size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := drawRoad(dc, c, p, l); err != nil {
		return nil, err
	}
	for i := range trees {
		if err := drawTree(dc, c, p, &trees[i]); err != nil {
			return nil, err
		}
	}
	if err := drawGroundCover(dc, c, p, l); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func drawRoad(dc *gg.Context, c *cfg.SceneConfig, p *cfg.Palette, l scenery.Layout) error {
	dc.SetFillBrush(gg.Solid(ggColor(p.RoadColor)))
	dc.MoveTo(l.RoadTopLeft, l.VanishingY)
	dc.LineTo(l.RoadTopRight, l.VanishingY)
	dc.LineTo(l.RoadBottomRight, l.RoadBottomY)
	dc.LineTo(l.RoadBottomLeft, l.RoadBottomY)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill road: %w", err)
	}

	dc.SetStrokeBrush(gg.Solid(ggColor(p.RoadEdgeColor)))
	dc.SetLineWidth(c.RoadEdgeWidth)
	dc.MoveTo(l.RoadTopLeft, l.VanishingY)
	dc.LineTo(l.RoadBottomLeft, l.RoadBottomY)
	dc.MoveTo(l.RoadTopRight, l.VanishingY)
	dc.LineTo(l.RoadBottomRight, l.RoadBottomY)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke road edges: %w", err)
	}
	return nil
}

func drawTree(dc *gg.Context, c *cfg.SceneConfig, p *cfg.Palette, t *scenery.Tree) error {
	dc.Push()
	defer dc.Pop()
	dc.Translate(t.X, t.Y)
	dc.Scale(t.Scale*t.Thickness, t.Scale*t.Height)

	trunk := withAlpha(p.TrunkColor, t.Alpha(p.TrunkAlphaBase, p.TrunkAlphaScale))
	dc.SetFillBrush(gg.Solid(trunk))
	dc.MoveTo(-15, 0)
	dc.CubicTo(-12, -100, -25+t.TrunkSway, -150, -5, -280)
	dc.LineTo(5, -280)
	dc.CubicTo(25+t.TrunkSway, -150, 12, -100, 15, 0)
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill trunk: %w", err)
	}

	dc.SetStrokeBrush(gg.Solid(trunk))
	dc.SetLineWidth(c.BranchWidth)
	for _, b := range t.Branches {
		cx, cy, ex, ey := b.BranchCurve()
		dc.MoveTo(0, b.Y)
		dc.QuadraticTo(cx, cy, ex, ey)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("failed to stroke branch: %w", err)
		}
	}

	if !p.Canopy {
		return nil
	}
	dc.SetFillBrush(gg.Solid(withAlpha(p.CanopyColor, t.Alpha(p.CanopyAlphaBase, p.CanopyAlphaScale))))
	for _, blob := range t.CanopyBlobs(c.CanopyBlobs) {
		dc.DrawCircle(blob.X, blob.Y, blob.R)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("failed to fill canopy: %w", err)
		}
	}
	return nil
}

func drawGroundCover(dc *gg.Context, c *cfg.SceneConfig, p *cfg.Palette, l scenery.Layout) error {
	top := l.Height - c.GroundHeight

	dc.SetFillBrush(gg.Solid(ggColor(p.RoadColor)))
	dc.DrawRectangle(0, top, l.Width, c.GroundHeight)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill ground cover: %w", err)
	}

	dc.SetFillBrush(gg.NewLinearGradientBrush(0, top, 0, l.Height).
		AddColorStop(0, ggColor(p.GroundTop)).
		AddColorStop(1, ggColor(p.GroundBottom)))
	dc.DrawRectangle(0, top, l.Width, c.GroundHeight)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill ground gradient: %w", err)
	}
	return nil
}
