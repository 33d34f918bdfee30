package model

import (
	"fmt"

	"github.com/linuxmatters/templeforge/internal/mesh"
)

// cubeFaces are (corner, texcoord) pairs per face, one normal per face.
var cubeFaces = [6][4][2]int{
	{{1, 1}, {2, 2}, {3, 3}, {4, 4}}, // back
	{{5, 1}, {8, 4}, {7, 3}, {6, 2}}, // front
	{{1, 1}, {5, 2}, {6, 3}, {2, 4}}, // bottom
	{{4, 1}, {3, 2}, {7, 3}, {8, 4}}, // top
	{{1, 1}, {4, 2}, {8, 3}, {5, 4}}, // left
	{{2, 1}, {6, 2}, {7, 3}, {3, 4}}, // right
}

// Cube is a textured 2×2×2 cube centred on the origin, used for pillars
// and rocks.
func Cube() (*mesh.Builder, error) {
	b := mesh.NewBuilder("Cube")

	for _, z := range []float64{-1, 1} {
		b.Vertex(-1, -1, z)
		b.Vertex(1, -1, z)
		b.Vertex(1, 1, z)
		b.Vertex(-1, 1, z)
	}

	b.TexCoord(0, 0)
	b.TexCoord(1, 0)
	b.TexCoord(1, 1)
	b.TexCoord(0, 1)

	b.Normal(0, 0, -1)
	b.Normal(0, 0, 1)
	b.Normal(0, -1, 0)
	b.Normal(0, 1, 0)
	b.Normal(-1, 0, 0)
	b.Normal(1, 0, 0)

	for i, face := range cubeFaces {
		refs := make([]mesh.Ref, len(face))
		for j, c := range face {
			refs[j] = mesh.VTN(c[0], c[1], i+1)
		}
		if err := b.Face(refs...); err != nil {
			return nil, fmt.Errorf("cube face %d: %w", i+1, err)
		}
	}

	return b, nil
}

const (
	groundHalfSize = 50.0
	groundTiles    = 10
	groundRepeat   = 5 // Texture repeats across the whole plane
)

// Ground is a flat groundTiles×groundTiles grid on y=0. Each vertex has a
// matching texcoord, so both share one index in the faces.
func Ground() (*mesh.Builder, error) {
	b := mesh.NewBuilder("Tiled ground plane")

	step := groundHalfSize * 2 / groundTiles
	for z := 0; z <= groundTiles; z++ {
		for x := 0; x <= groundTiles; x++ {
			b.Vertex(-groundHalfSize+float64(x)*step, 0, -groundHalfSize+float64(z)*step)
			b.TexCoord(float64(x)/groundTiles*groundRepeat, float64(z)/groundTiles*groundRepeat)
		}
	}

	up := b.Normal(0, 1, 0)

	const stride = groundTiles + 1
	for z := 0; z < groundTiles; z++ {
		for x := 0; x < groundTiles; x++ {
			tl := z*stride + x + 1
			tr := tl + 1
			bl := (z+1)*stride + x + 1
			br := bl + 1
			if err := b.Face(mesh.VTN(tl, tl, up), mesh.VTN(bl, bl, up), mesh.VTN(br, br, up), mesh.VTN(tr, tr, up)); err != nil {
				return nil, fmt.Errorf("ground tile %d,%d: %w", x, z, err)
			}
		}
	}

	return b, nil
}
