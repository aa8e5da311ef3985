package assets

import (
	"bytes"
	"testing"
)

func TestNoiseFieldDeterministic(t *testing.T) {
	a := NoiseField(64, 48, 0.05, 3, 11)
	b := NoiseField(64, 48, 0.05, 3, 11)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Errorf("same seed produced different textures")
	}
}

func TestNoiseFieldVaries(t *testing.T) {
	img := NoiseField(64, 64, 0.05, 3, 3)
	lo, hi := uint8(255), uint8(0)
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 255 {
			t.Fatalf("alpha at %d = %d, want 255", i/4, img.Pix[i+3])
		}
		lo = min(lo, img.Pix[i])
		hi = max(hi, img.Pix[i])
	}
	if hi-lo < 20 {
		t.Errorf("red channel range = [%d, %d], want visible variation", lo, hi)
	}
}

func TestNoiseFieldEmpty(t *testing.T) {
	if img := NoiseField(0, 0, 0.05, 3, 1); len(img.Pix) != 0 {
		t.Errorf("len(Pix) = %d, want 0", len(img.Pix))
	}
}
