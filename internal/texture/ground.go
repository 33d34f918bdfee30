package texture

import (
	"math"
	"math/rand/v2"

	"github.com/linuxmatters/templeforge/internal/raster"
)

// Warm desert sand, light to deep
var sandPalette = [...]raster.Pixel{
	{R: 237, G: 201, B: 175},
	{R: 220, G: 182, B: 150},
	{R: 210, G: 175, B: 140},
	{R: 200, G: 165, B: 130},
}

const sandOctaves = 4

// sandNoise sums sandOctaves sine octaves, each at double the frequency and
// half the amplitude of the last, normalised to roughly [0, 1].
func sandNoise(x, y, width, height int) float64 {
	noise := 0.0
	frequency := 1.0
	amplitude := 1.0
	for octave := 0; octave < sandOctaves; octave++ {
		nx := float64(x) * frequency / float64(width)
		ny := float64(y) * frequency / float64(height)
		noise += (math.Sin(nx*10+ny*7)*0.5 + 0.5) * amplitude
		frequency *= 2
		amplitude *= 0.5
	}
	return noise / 2.0
}

// Sand picks a palette colour from layered sine noise and adds a shared
// ±15 grain plus ±5 per channel.
func Sand(width, height int, rng *rand.Rand) raster.PixelFunc {
	return func(x, y int) raster.Pixel {
		idx := int(sandNoise(x, y, width, height) * float64(len(sandPalette)-1))
		base := sandPalette[raster.ClampRange(idx, 0, len(sandPalette)-1)]

		grain := randInt(rng, -15, 15)

		return raster.Pixel{
			R: raster.ClampChannel(int(base.R) + grain + randInt(rng, -5, 5)),
			G: raster.ClampChannel(int(base.G) + grain + randInt(rng, -5, 5)),
			B: raster.ClampChannel(int(base.B) + grain + randInt(rng, -5, 5)),
		}
	}
}

// Snow is a blue-tinted white with gentle sine shading and rare ice-crystal
// sparkles. Channels never drop below 200/205/210.
func Snow(width, height int, rng *rand.Rand) raster.PixelFunc {
	return func(x, y int) raster.Pixel {
		fx, fy := float64(x), float64(y)

		noise := (math.Sin(fx*0.1) + math.Cos(fy*0.1)) * 5

		sparkle := 0
		if rng.Float64() > 0.98 {
			sparkle = randInt(rng, 20, 40)
		}

		shadow := int(math.Sin(fx*0.05+fy*0.05) * 8)

		level := func(base float64) int {
			return int(base + noise + float64(sparkle) + float64(shadow))
		}

		return raster.Pixel{
			R: uint8(raster.ClampRange(level(245), 200, 255)),
			G: uint8(raster.ClampRange(level(248), 205, 255)),
			B: uint8(raster.ClampRange(level(255), 210, 255)),
		}
	}
}
