package assets

import (
	"image"
	"math/rand"
	"testing"

	cfg "github.com/automoto/seasonscape/config"
	"github.com/automoto/seasonscape/shared/scenery"
)

func alphaAt(img image.Image, x, y int) uint8 {
	_, _, _, a := img.At(x, y).RGBA()
	return uint8(a >> 8)
}

func TestBakeGlow(t *testing.T) {
	img, err := BakeGlow(32, OrbGlow)
	if err != nil {
		t.Fatalf("BakeGlow: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}
	if a := alphaAt(img, 32, 32); a < 200 {
		t.Errorf("centre alpha = %d, want >= 200", a)
	}
	if a := alphaAt(img, 0, 0); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestBakeGlowRejectsEmptyRadius(t *testing.T) {
	if _, err := BakeGlow(0, OrbGlow); err == nil {
		t.Errorf("BakeGlow(0) error = nil, want error")
	}
}

func TestBakeSkyCentreColour(t *testing.T) {
	p := cfg.PaletteFor(cfg.Winter)
	img, err := BakeSky(p, 200, 100)
	if err != nil {
		t.Fatalf("BakeSky: %v", err)
	}
	r, g, b, _ := img.At(100, 50).RGBA()
	want := p.SkyInner
	diff := func(got uint32, want uint8) int {
		d := int(got>>8) - int(want)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(r, want.R) > 3 || diff(g, want.G) > 3 || diff(b, want.B) > 3 {
		t.Errorf("centre = (%d, %d, %d), want ~(%d, %d, %d)", r>>8, g>>8, b>>8, want.R, want.G, want.B)
	}
	if a := alphaAt(img, 0, 0); a != 255 {
		t.Errorf("corner alpha = %d, want opaque sky", a)
	}
}

func TestBakeGroundCoversBottom(t *testing.T) {
	c := &cfg.Scene
	l := scenery.NewLayout(c, 1280, 720)
	trees := scenery.GenerateTrees(c, l, c.TreeCount, rand.New(rand.NewSource(7)))

	img, err := BakeGround(c, cfg.PaletteFor(cfg.Winter), l, trees)
	if err != nil {
		t.Fatalf("BakeGround: %v", err)
	}
	if a := alphaAt(img, 640, 10); a != 0 {
		t.Errorf("sky alpha = %d, want 0 above the vanishing point", a)
	}
	if a := alphaAt(img, 640, 719); a < 240 {
		t.Errorf("ground alpha = %d, want nearly opaque", a)
	}
}

func TestBakeGroundRejectsEmptySurface(t *testing.T) {
	c := &cfg.Scene
	l := scenery.NewLayout(c, 0, 0)
	if _, err := BakeGround(c, cfg.PaletteFor(cfg.Spring), l, nil); err == nil {
		t.Errorf("BakeGround on empty surface error = nil, want error")
	}
}
