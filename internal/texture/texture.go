// Package texture holds the procedural ground and wall patterns.
//
// Each constructor closes over the image size and an explicit random source
// and returns a raster.PixelFunc. The functions draw from rng as they are
// evaluated, so output is reproducible only when pixels are visited in
// row-major order, which raster.Grid.Fill guarantees.
package texture

import (
	"math/rand/v2"
	"sort"

	"github.com/linuxmatters/templeforge/internal/raster"
)

// Func builds a pixel function for a width×height texture.
type Func func(width, height int, rng *rand.Rand) raster.PixelFunc

// Registry maps manifest generator names to texture constructors.
var Registry = map[string]Func{
	"sand":           Sand,
	"snow":           Snow,
	"ice_wall":       IceWall,
	"sandstone_wall": SandstoneWall,
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render evaluates a texture into a new grid.
func Render(fn Func, width, height int, rng *rand.Rand) *raster.Grid {
	return raster.Generate(width, height, fn(width, height, rng))
}

// randInt returns a uniform integer in [lo, hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
