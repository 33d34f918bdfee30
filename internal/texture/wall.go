package texture

import (
	"math"
	"math/rand/v2"

	"github.com/linuxmatters/templeforge/internal/raster"
)

// Ice crack lattice
const (
	crackSpacing = 32
	crackWidth   = 2
	crackChance  = 0.7 // A lattice pixel cracks when rng exceeds this
)

// Sandstone brick layout
const (
	brickHeight = 32
	brickWidth  = 64
	mortarWidth = 2
)

var (
	sandstoneBase = raster.Pixel{R: 210, G: 180, B: 140}
	mortarColour  = raster.Pixel{R: 160, G: 140, B: 100}
)

// IceWall is a blue-white sine gradient crossed by a darker, broken crack lattice.
func IceWall(width, height int, rng *rand.Rand) raster.PixelFunc {
	return func(x, y int) raster.Pixel {
		r, g, b := iceGradient(x, y)

		// rng is only consulted on lattice lines
		onLattice := x%crackSpacing < crackWidth || y%crackSpacing < crackWidth
		if onLattice && rng.Float64() > crackChance {
			r -= 40
			g -= 30
			b -= 20
		}

		return raster.Pixel{
			R: raster.ClampChannel(r),
			G: raster.ClampChannel(g),
			B: raster.ClampChannel(b),
		}
	}
}

func iceGradient(x, y int) (r, g, b int) {
	r = 180 + int(math.Sin(float64(x)*0.1)*20)
	g = 210 + int(math.Cos(float64(y)*0.1)*20)
	b = 240 + int(math.Sin(float64(x+y)*0.05)*15)
	return r, g, b
}

// SandstoneWall is running-bond brickwork: odd rows shift by half a brick,
// mortar lines are flat, brick faces get ±10 of noise.
func SandstoneWall(width, height int, rng *rand.Rand) raster.PixelFunc {
	return func(x, y int) raster.Pixel {
		row := y / brickHeight
		offset := (row % 2) * (brickWidth / 2)

		if y%brickHeight < mortarWidth || (x+offset)%brickWidth < mortarWidth {
			return mortarColour
		}

		noise := randInt(rng, -10, 10)
		return raster.Pixel{
			R: raster.ClampChannel(int(sandstoneBase.R) + noise),
			G: raster.ClampChannel(int(sandstoneBase.G) + noise),
			B: raster.ClampChannel(int(sandstoneBase.B) + int(float64(noise)*0.8)),
		}
	}
}
