package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/automoto/seasonscape/assets"
	"github.com/automoto/seasonscape/components"
	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/rig"
	"github.com/automoto/seasonscape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Stroke widths in design units
const (
	outlineWidth   = 7.5
	featureWidth   = 6
	hatWidth       = 5
	companionWidth = 6
	hamsterWidth   = 5
	bubbleWidth    = 3
	whiskerWidth   = 2
)

// Pajama band and polka pattern in design units
const (
	pajamaTop   = 305
	polkaStepX  = 36
	polkaStepY  = 32
	polkaRadius = 2.5
	faceCX      = 300
	ellipseSegs = 72
)

var (
	rigPaint  painter
	polkaDot  = cfg.White
	whiteFill = cfg.White
	rigShader = &ebiten.DrawRectShaderOptions{}
)

func deg(d float64) float64 {
	return d * math.Pi / 180
}

// rotateAbout rotates (x, y) by rot radians around (px, py).
func rotateAbout(x, y, px, py, rot float64) (float64, float64) {
	s, c := math.Sincos(rot)
	dx, dy := x-px, y-py
	return px + dx*c - dy*s, py + dx*s + dy*c
}

// outlined fills path when fill is non-nil and strokes it with the outline
// colour when width is positive.
func outlined(dst *ebiten.Image, path *vector.Path, fill color.Color, width float32) {
	if fill != nil {
		rigPaint.fill(dst, path, fill)
	}
	if width > 0 {
		rigPaint.stroke(dst, path, width, cfg.Rig.Outline)
	}
}

// at points the painter at a group translated by (tx, ty) and rotated by
// rot radians inside the design box mapped by base.
func at(base ebiten.GeoM, tx, ty, rot float64) {
	var g ebiten.GeoM
	g.Rotate(rot)
	g.Translate(tx, ty)
	g.Concat(base)
	rigPaint.geo = g
}

// DrawRig paints the character: companions and body through the scruffy
// filter, then the face details and the hat on top without it.
func DrawRig(e *ecs.ECS, screen *ebiten.Image) {
	tags.Rig.Each(e.World, func(entry *donburi.Entry) {
		r := components.Rig.Get(entry)
		if r.Scale <= 0 {
			return
		}
		f := r.Motion.Frame()

		padX, padY, w, h := rigLayerSize(r.Scale)
		ensureRigLayer(e, r, w, h)

		var layerBase ebiten.GeoM
		layerBase.Scale(r.Scale, r.Scale)
		layerBase.Translate(padX, padY)

		r.Layer.Clear()
		drawCompanions(r.Layer, layerBase, f)
		drawBody(r.Layer, layerBase, f)
		compositeRigLayer(screen, r, r.OriginX-padX, r.OriginY-padY)

		var screenBase ebiten.GeoM
		screenBase.Scale(r.Scale, r.Scale)
		screenBase.Translate(r.OriginX, r.OriginY)
		drawFace(screen, screenBase, f)
		drawHat(screen, screenBase, f)
	})
}

// rigLayerSize returns the filter padding and the offscreen layer size for
// the design box drawn at scale.
func rigLayerSize(scale float64) (padX, padY float64, w, h int) {
	c := &cfg.Rig
	padX = math.Ceil(c.DesignWidth * c.FilterMargin * scale)
	padY = math.Ceil(c.DesignHeight * c.FilterMargin * scale)
	w = int(math.Ceil(c.DesignWidth*scale + 2*padX))
	h = int(math.Ceil(c.DesignHeight*scale + 2*padY))
	return padX, padY, w, h
}

// GetOrCreateRigNoise returns the world's displacement field, baking it at
// design scale on first use.
func GetOrCreateRigNoise(e *ecs.ECS) *components.RigNoiseData {
	entry, ok := components.RigNoise.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.RigNoise))
		c := &cfg.Rig
		_, _, w, h := rigLayerSize(1)
		components.RigNoise.SetValue(entry, components.RigNoiseData{
			Field: assets.NoiseField(w, h, c.ScruffyFrequency, c.ScruffyOctaves, rng.Int63()),
		})
	}
	return components.RigNoise.Get(entry)
}

// ensureRigLayer sizes the offscreen layer and resamples the baked noise to
// match it on the GPU.
func ensureRigLayer(e *ecs.ECS, r *components.RigData, w, h int) {
	if r.Layer != nil && r.Layer.Bounds().Dx() == w && r.Layer.Bounds().Dy() == h {
		return
	}
	releaseRigImages(r)
	r.Layer = ebiten.NewImage(w, h)
	r.Noise = ebiten.NewImage(w, h)

	noise := GetOrCreateRigNoise(e)
	if noise.Image == nil {
		noise.Image = ebiten.NewImageFromImage(noise.Field)
	}
	b := noise.Image.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	r.Noise.DrawImage(noise.Image, op)
}

// compositeRigLayer draws the offscreen layer through the displacement
// shader, or unfiltered when the shader failed to load.
func compositeRigLayer(screen *ebiten.Image, r *components.RigData, x, y float64) {
	if assets.ScruffyShader == nil {
		drawImageAt(screen, r.Layer, x, y)
		return
	}
	b := r.Layer.Bounds()
	rigShader.GeoM.Reset()
	rigShader.GeoM.Translate(x, y)
	rigShader.Images[0] = r.Layer
	rigShader.Images[1] = r.Noise
	rigShader.Uniforms = map[string]any{
		"Scale": float32(cfg.Rig.ScruffyScale * r.Scale),
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.ScruffyShader, rigShader)
}

func drawCompanions(dst *ebiten.Image, base ebiten.GeoM, f rig.Frame) {
	c := &cfg.Rig

	// Rabbit
	at(base, 100, 360+f.Bounce, 0)
	var ears vector.Path
	ellipse(&ears, -18, -40, 15, 28, deg(-5))
	ellipse(&ears, 18, -40, 15, 28, deg(5))
	outlined(dst, &ears, c.Rabbit, companionWidth)

	var body vector.Path
	body.MoveTo(-55, 30)
	body.CubicTo(-60, -10, -40, -42, 0, -42)
	body.CubicTo(40, -42, 60, -10, 55, 30)
	body.CubicTo(50, 60, -50, 60, -55, 30)
	body.Close()
	outlined(dst, &body, c.Rabbit, companionWidth)

	var eyes vector.Path
	circle(&eyes, -22, -8, 4)
	circle(&eyes, 22, -8, 4)
	outlined(dst, &eyes, c.Outline, 0)

	var mouth vector.Path
	mouth.MoveTo(-8, 5)
	mouth.QuadTo(-6.5, 10, 0, 9)
	mouth.QuadTo(6.5, 10, 8, 5)
	outlined(dst, &mouth, nil, whiskerWidth)

	// Hamster
	at(base, 500, 380+f.Bounce, 0)
	var hEars vector.Path
	circle(&hEars, -15, -20, 10)
	circle(&hEars, 15, -20, 10)
	outlined(dst, &hEars, c.Hamster, hamsterWidth)

	var hBody vector.Path
	ellipse(&hBody, 0, 0, 35, 30, 0)
	outlined(dst, &hBody, c.Hamster, hamsterWidth)

	var hEyes vector.Path
	circle(&hEyes, -10, -2, 3.5)
	circle(&hEyes, 10, -2, 3.5)
	outlined(dst, &hEyes, c.Outline, 0)
}

func drawBody(dst *ebiten.Image, base ebiten.GeoM, f rig.Frame) {
	c := &cfg.Rig
	at(base, f.ShiverX, f.ShiverY, 0)

	for _, side := range []float64{-1, 1} {
		cx, cy := rotateAbout(faceCX+side*85, f.EarCY, faceCX+side*85, 180, deg(side*20))
		var ear vector.Path
		ellipse(&ear, cx, cy, 48, f.EarRY, deg(side*20))
		outlined(dst, &ear, c.Fur, outlineWidth)
	}

	var face vector.Path
	ellipse(&face, faceCX, f.FaceCY, f.FaceRX, f.FaceRY, 0)
	outlined(dst, &face, c.Fur, 0)

	drawPajama(dst, f)
	outlined(dst, &face, nil, outlineWidth)

	var collar vector.Path
	y := float32(313 + f.CollarY)
	collar.MoveTo(float32(faceCX-f.CollarHalfWidth), y)
	collar.QuadTo(faceCX, y+12, float32(faceCX+f.CollarHalfWidth), y)
	outlined(dst, &collar, nil, outlineWidth)

	var button vector.Path
	circle(&button, faceCX, f.ButtonCY, 9)
	outlined(dst, &button, whiteFill, outlineWidth)

	for _, side := range []float64{-1, 1} {
		px := faceCX + side*65
		cx, cy := rotateAbout(px, f.ArmCY, px, 407, deg(-side*10))
		var arm vector.Path
		ellipse(&arm, cx, cy, 42, 30, deg(-side*10))
		outlined(dst, &arm, c.Pajama, outlineWidth)
	}
}

// drawPajama fills the part of the face below the pajama line and dots it.
func drawPajama(dst *ebiten.Image, f rig.Frame) {
	pts := clipBelow(ellipsePoints(faceCX, f.FaceCY, f.FaceRX, f.FaceRY), pajamaTop)
	if len(pts) < 6 {
		return
	}
	var band vector.Path
	polyline(&band, true, pts...)
	rigPaint.fill(dst, &band, cfg.Rig.Pajama)

	var dots vector.Path
	for y := polkaStepY / 2.0; y < cfg.Rig.DesignHeight; y += polkaStepY {
		if y-polkaRadius < pajamaTop {
			continue
		}
		for x := polkaStepX / 2.0; x < cfg.Rig.DesignWidth; x += polkaStepX {
			if insideEllipse(x, y, faceCX, f.FaceCY, f.FaceRX-polkaRadius, f.FaceRY-polkaRadius) {
				circle(&dots, x, y, polkaRadius)
			}
		}
	}
	rigPaint.fill(dst, &dots, polkaDot)
}

func ellipsePoints(cx, cy, rx, ry float64) []float64 {
	pts := make([]float64, 0, ellipseSegs*2)
	for i := 0; i < ellipseSegs; i++ {
		s, c := math.Sincos(float64(i) / ellipseSegs * 2 * math.Pi)
		pts = append(pts, cx+c*rx, cy+s*ry)
	}
	return pts
}

// clipBelow clips a closed polygon of xy pairs to the half plane y >= top.
func clipBelow(pts []float64, top float64) []float64 {
	n := len(pts) / 2
	out := make([]float64, 0, len(pts)+4)
	for i := 0; i < n; i++ {
		ax, ay := pts[2*i], pts[2*i+1]
		j := (i + 1) % n
		bx, by := pts[2*j], pts[2*j+1]
		aIn, bIn := ay >= top, by >= top
		if aIn {
			out = append(out, ax, ay)
		}
		if aIn != bIn {
			t := (top - ay) / (by - ay)
			out = append(out, ax+(bx-ax)*t, top)
		}
	}
	return out
}

func insideEllipse(x, y, cx, cy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx, dy := (x-cx)/rx, (y-cy)/ry
	return dx*dx+dy*dy <= 1
}

func drawFace(dst *ebiten.Image, base ebiten.GeoM, f rig.Frame) {
	c := &cfg.Rig
	ex := f.Expression
	at(base, f.ShiverX, f.ShiverY+f.FeatureY, 0)

	blush := c.Blush
	if ex.BlushStrong {
		blush = c.BlushPetted
	}
	var cheeks vector.Path
	ellipse(&cheeks, 222, 287, 38, 22, 0)
	ellipse(&cheeks, 378, 287, 38, 22, 0)
	rigPaint.fill(dst, &cheeks, blush)

	if ex.EyesClosed {
		var lids vector.Path
		lids.MoveTo(252, 263)
		lids.Arc(264, 263, 12, math.Pi, 2*math.Pi, vector.Clockwise)
		lids.MoveTo(324, 263)
		lids.Arc(336, 263, 12, math.Pi, 2*math.Pi, vector.Clockwise)
		outlined(dst, &lids, nil, featureWidth)
	} else {
		var eyes vector.Path
		circle(&eyes, 264+f.EyeX, 269+f.EyeY, 8)
		circle(&eyes, 336+f.EyeX, 269+f.EyeY, 8)
		outlined(dst, &eyes, c.Outline, 0)
	}

	var mouth vector.Path
	switch ex.Mouth {
	case rig.MouthWorried:
		polyline(&mouth, false, 288, 303, 300, 293, 312, 303)
		outlined(dst, &mouth, nil, featureWidth)
	case rig.MouthTooth:
		mouth.MoveTo(288, 292)
		mouth.LineTo(288, 305)
		mouth.CubicTo(288, 320, 312, 320, 312, 305)
		mouth.LineTo(312, 292)
		mouth.Close()
		outlined(dst, &mouth, c.Tooth, featureWidth)
	default:
		ellipse(&mouth, 300, 297, 14, 18, 0)
		outlined(dst, &mouth, c.Mouth, featureWidth)
	}

	var brows vector.Path
	switch ex.Brows {
	case rig.BrowsAngry:
		polyline(&brows, false, 245, 239, 272, 251)
		polyline(&brows, false, 355, 239, 328, 251)
	case rig.BrowsSoft:
		polyline(&brows, false, 250, 230, 265, 240)
		polyline(&brows, false, 350, 230, 335, 240)
	}
	outlined(dst, &brows, nil, featureWidth)

	if ex.SnotBubble {
		var bubble vector.Path
		circle(&bubble, 308+f.BubbleX, 287, f.BubbleR)
		outlined(dst, &bubble, c.Bubble, bubbleWidth)

		var shine vector.Path
		circle(&shine, 305+f.BubbleX, 284, 2.5)
		rigPaint.fill(dst, &shine, c.Shine)
	}
}

func drawHat(dst *ebiten.Image, base ebiten.GeoM, f rig.Frame) {
	c := &cfg.Rig
	at(base, 300+f.ShiverX, 135+f.ShiverY+f.HatY, deg(f.HatAngle))

	var cone, brim, pompom vector.Path
	switch f.Expression.Hat {
	case rig.HatParty:
		polyline(&cone, true, -30, 10, 30, 10, 0, -55)
		outlined(dst, &cone, c.SpringHat, hatWidth)
		pill(&brim, -35, 0, 70, 18)
		circle(&pompom, 0, -55, 12)
	case rig.HatSanta:
		cone.MoveTo(-35, 15)
		cone.CubicTo(-20, -45, 40, -50, 60, -10)
		cone.CubicTo(65, 0, 50, 10, 50, 10)
		cone.Close()
		outlined(dst, &cone, c.WinterHat, hatWidth)
		pill(&brim, -45, 10, 90, 22)
		circle(&pompom, 55, -8, 14)
	default:
		log.Printf("Warning: unknown hat %d", f.Expression.Hat)
		return
	}
	outlined(dst, &brim, whiteFill, hatWidth)
	outlined(dst, &pompom, whiteFill, hatWidth)
}

// pill appends a rectangle with fully rounded short ends.
func pill(path *vector.Path, x, y, w, h float64) {
	r := h / 2
	path.MoveTo(float32(x+r), float32(y))
	path.LineTo(float32(x+w-r), float32(y))
	path.Arc(float32(x+w-r), float32(y+r), float32(r), -math.Pi/2, math.Pi/2, vector.Clockwise)
	path.LineTo(float32(x+r), float32(y+h))
	path.Arc(float32(x+r), float32(y+r), float32(r), math.Pi/2, 3*math.Pi/2, vector.Clockwise)
	path.Close()
}
