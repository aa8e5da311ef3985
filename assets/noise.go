package assets

import (
	"image"
	"math"

	"github.com/aquilax/go-perlin"
)

// noise channel offset so red and green are decorrelated
const channelOffset = 137.31

// NoiseField renders a displacement texture for the scruffy filter. Red and
// green hold two fractal Perlin channels mapped from [-1, 1] to [0, 255].
func NoiseField(width, height int, frequency float64, octaves int, seed int64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	p := perlin.NewPerlin(2, 2, int32(octaves), seed)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x)*frequency, float64(y)*frequency
			i := img.PixOffset(x, y)
			img.Pix[i+0] = toByte(p.Noise2D(fx, fy))
			img.Pix[i+1] = toByte(p.Noise2D(fx+channelOffset, fy+channelOffset))
			img.Pix[i+2] = 128
			img.Pix[i+3] = 255
		}
	}
	return img
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v*0.5+0.5)) * 255))
}
