package model

import (
	"fmt"

	"github.com/linuxmatters/templeforge/internal/mesh"
)

const (
	pyramidHalfWidth = 10
	pyramidHeight    = 8
	pyramidStepScale = 0.7 // Mid ring half-width relative to the base
	pyramidStepLevel = 0.3 // Mid ring height relative to the apex
)

// Pyramid is a stepped pyramid: base ring, inset mid ring and apex. The
// lower tier is four quads, the upper tier four triangles meeting at the apex.
func Pyramid() (*mesh.Builder, error) {
	b := mesh.NewBuilder("Stepped pyramid", "Base ring, mid ring and apex")

	ring := func(half, y float64) {
		b.Vertex(-half, y, -half)
		b.Vertex(half, y, -half)
		b.Vertex(half, y, half)
		b.Vertex(-half, y, half)
	}
	ring(pyramidHalfWidth, 0)
	ring(pyramidHalfWidth*pyramidStepScale, pyramidHeight*pyramidStepLevel)
	apex := b.Vertex(0, pyramidHeight, 0)

	down := b.Normal(0, -1, 0)
	sides := [4]int{
		b.Normal(0.7071, 0.7071, 0),
		b.Normal(-0.7071, 0.7071, 0),
		b.Normal(0, 0.7071, 0.7071),
		b.Normal(0, 0.7071, -0.7071),
	}

	if err := b.Face(mesh.VN(1, down), mesh.VN(2, down), mesh.VN(3, down), mesh.VN(4, down)); err != nil {
		return nil, fmt.Errorf("pyramid base: %w", err)
	}

	for i, n := range sides {
		lo, loNext := 1+i, 1+(i+1)%4
		hi, hiNext := lo+4, loNext+4
		if err := b.Face(mesh.VN(lo, n), mesh.VN(loNext, n), mesh.VN(hiNext, n), mesh.VN(hi, n)); err != nil {
			return nil, fmt.Errorf("pyramid lower tier %d: %w", i, err)
		}
	}
	for i, n := range sides {
		hi, hiNext := 5+i, 5+(i+1)%4
		if err := b.Face(mesh.VN(hi, n), mesh.VN(hiNext, n), mesh.VN(apex, n)); err != nil {
			return nil, fmt.Errorf("pyramid upper tier %d: %w", i, err)
		}
	}

	return b, nil
}

const (
	trunkHeight   = 4
	trunkRadius   = 0.4
	trunkSegments = 8
	armLevel      = 2.5
	armLength     = 1.5
	armRadius     = 0.25
	armSegments   = 4
)

// Cactus is an eight-sided trunk with a square arm stub on either side at
// armLevel, each starting at the trunk surface.
func Cactus() (*mesh.Builder, error) {
	b := mesh.NewBuilder("Desert cactus")

	if _, err := mesh.Cylinder(b, mesh.Vec3{}, mesh.AxisY, trunkHeight, trunkRadius, trunkSegments); err != nil {
		return nil, fmt.Errorf("cactus trunk: %w", err)
	}

	arms := []struct {
		name   string
		start  mesh.Vec3
		length float64
	}{
		{"left", mesh.Vec3{X: -trunkRadius, Y: armLevel}, -armLength},
		{"right", mesh.Vec3{X: trunkRadius, Y: armLevel}, armLength},
	}
	for _, arm := range arms {
		if _, err := mesh.Cylinder(b, arm.start, mesh.AxisX, arm.length, armRadius, armSegments); err != nil {
			return nil, fmt.Errorf("cactus %s arm: %w", arm.name, err)
		}
	}

	return b, nil
}

// Tree is a box trunk under a four-sided canopy pyramid that closes with
// a square underside.
func Tree() (*mesh.Builder, error) {
	b := mesh.NewBuilder("Tree")

	if _, err := mesh.Box(b, mesh.Vec3{Y: 1}, mesh.Vec3{X: 1, Y: 2, Z: 1}); err != nil {
		return nil, fmt.Errorf("tree trunk: %w", err)
	}

	c1 := b.Vertex(-2, 2, -2)
	c2 := b.Vertex(2, 2, -2)
	c3 := b.Vertex(2, 2, 2)
	c4 := b.Vertex(-2, 2, 2)
	top := b.Vertex(0, 5, 0)

	canopy := [][]int{
		{c1, c2, top},
		{c2, c3, top},
		{c3, c4, top},
		{c4, c1, top},
		{c1, c4, c3, c2},
	}
	for _, face := range canopy {
		refs := make([]mesh.Ref, len(face))
		for i, v := range face {
			refs[i] = mesh.V(v)
		}
		if err := b.Face(refs...); err != nil {
			return nil, fmt.Errorf("tree canopy: %w", err)
		}
	}

	return b, nil
}
