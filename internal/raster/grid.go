// Package raster builds pixel grids and serializes them as uncompressed 24-bit BMP files.
package raster

import (
	"image"
	"image/color"
)

// Pixel is a single RGB colour.
type Pixel struct {
	R, G, B uint8
}

// PixelFunc computes the colour of the pixel at (x, y).
type PixelFunc func(x, y int) Pixel

// Grid is a row-major width×height block of pixels.
type Grid struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewGrid allocates a black grid. Dimensions are trusted.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// Generate allocates a grid and fills it from fn.
func Generate(width, height int, fn PixelFunc) *Grid {
	g := NewGrid(width, height)
	g.Fill(fn)
	return g
}

// Fill evaluates fn for every pixel, y outer and x inner. Generators that draw
// from a seeded source depend on this order.
func (g *Grid) Fill(fn PixelFunc) {
	i := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Pix[i] = fn(x, y)
			i++
		}
	}
}

// PixelAt returns the pixel at (x, y).
func (g *Grid) PixelAt(x, y int) Pixel {
	return g.Pix[y*g.Width+x]
}

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// At implements image.Image.
func (g *Grid) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return color.RGBA{}
	}
	p := g.PixelAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// ClampChannel limits v to a single 8-bit channel value.
func ClampChannel(v int) uint8 {
	return uint8(ClampRange(v, 0, 255))
}

// ClampRange limits v to [lo, hi].
func ClampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
