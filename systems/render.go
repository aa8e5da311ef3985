package systems

import (
	"image"
	"image/color"
	"sync"

	"github.com/automoto/seasonscape/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whiteTexture returns a 1x1 white source for untextured triangles. It is
// created on first draw so headless code never allocates GPU images.
func whiteTexture() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// painter fills and strokes vector paths through a transform, reusing its
// vertex buffers between calls.
type painter struct {
	geo   ebiten.GeoM
	blend ebiten.Blend
	vs    []ebiten.Vertex
	is    []uint16
}

func (p *painter) fill(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.flush(dst, clr, ebiten.FillRuleNonZero)
}

func (p *painter) stroke(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	p.flush(dst, clr, ebiten.FillRuleFillAll)
}

func (p *painter) flush(dst *ebiten.Image, clr color.Color, rule ebiten.FillRule) {
	if len(p.is) == 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	for i := range p.vs {
		x, y := p.geo.Apply(float64(p.vs[i].DstX), float64(p.vs[i].DstY))
		p.vs[i].DstX, p.vs[i].DstY = float32(x), float32(y)
		p.vs[i].SrcX, p.vs[i].SrcY = 1, 1
		p.vs[i].ColorR = float32(r) / 0xffff
		p.vs[i].ColorG = float32(g) / 0xffff
		p.vs[i].ColorB = float32(b) / 0xffff
		p.vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       rule,
		AntiAlias:      true,
		Blend:          p.blend,
	}
	dst.DrawTriangles(p.vs, p.is, whiteTexture(), op)
}

// kappa places cubic control points so four arcs approximate an ellipse
const kappa = 0.5522847498307936

// ellipse appends a closed ellipse rotated by rot radians around its centre.
func ellipse(path *vector.Path, cx, cy, rx, ry, rot float64) {
	var m ebiten.GeoM
	m.Rotate(rot)
	m.Translate(cx, cy)
	pt := func(x, y float64) (float32, float32) {
		tx, ty := m.Apply(x, y)
		return float32(tx), float32(ty)
	}
	ox, oy := rx*kappa, ry*kappa

	x0, y0 := pt(rx, 0)
	path.MoveTo(x0, y0)
	c1x, c1y := pt(rx, oy)
	c2x, c2y := pt(ox, ry)
	ex, ey := pt(0, ry)
	path.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
	c1x, c1y = pt(-ox, ry)
	c2x, c2y = pt(-rx, oy)
	ex, ey = pt(-rx, 0)
	path.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
	c1x, c1y = pt(-rx, -oy)
	c2x, c2y = pt(-ox, -ry)
	ex, ey = pt(0, -ry)
	path.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
	c1x, c1y = pt(ox, -ry)
	c2x, c2y = pt(rx, -oy)
	path.CubicTo(c1x, c1y, c2x, c2y, x0, y0)
	path.Close()
}

// circle appends a closed circle.
func circle(path *vector.Path, cx, cy, r float64) {
	ellipse(path, cx, cy, r, r, 0)
}

// polyline appends connected segments through xy pairs.
func polyline(path *vector.Path, closed bool, xy ...float64) {
	for i := 0; i+1 < len(xy); i += 2 {
		if i == 0 {
			path.MoveTo(float32(xy[0]), float32(xy[1]))
			continue
		}
		path.LineTo(float32(xy[i]), float32(xy[i+1]))
	}
	if closed {
		path.Close()
	}
}

// drawSprite draws a square sprite centred on (x, y) scaled to radius r and
// tinted by clr with the given alpha.
func drawSprite(dst, sprite *ebiten.Image, x, y, r, rot float64, clr color.NRGBA, alpha float64) {
	if sprite == nil || alpha <= 0 || r <= 0 {
		return
	}
	half := float64(sprite.Bounds().Dx()) / 2
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-half, -half)
	drawOp.GeoM.Scale(r/half, r/half)
	drawOp.GeoM.Rotate(rot)
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleWithColor(clr)
	drawOp.ColorScale.ScaleAlpha(float32(gamemath.Clamp(alpha, 0, 1)))
	drawOp.Blend = ebiten.Blend{}
	dst.DrawImage(sprite, drawOp)
}

func drawImageAt(dst, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.Reset()
	drawOp.Blend = ebiten.Blend{}
	dst.DrawImage(img, drawOp)
}
