package mesh

import "math"

// boxFaces lists the six quads of a box in local 1-based vertex order.
var boxFaces = [6][4]int{
	{1, 2, 3, 4},
	{5, 8, 7, 6},
	{1, 5, 6, 2},
	{4, 3, 7, 8},
	{1, 4, 8, 5},
	{2, 6, 7, 3},
}

// Box emits an axis-aligned rectangular prism centred on c with the given
// extents: 8 vertices then 6 quads. It returns the next free vertex index.
func Box(b *Builder, c, size Vec3) (int, error) {
	hw, hh, hd := size.X/2, size.Y/2, size.Z/2

	first := b.NextVertex()
	b.Vertex(c.X-hw, c.Y-hh, c.Z-hd)
	b.Vertex(c.X+hw, c.Y-hh, c.Z-hd)
	b.Vertex(c.X+hw, c.Y+hh, c.Z-hd)
	b.Vertex(c.X-hw, c.Y+hh, c.Z-hd)
	b.Vertex(c.X-hw, c.Y-hh, c.Z+hd)
	b.Vertex(c.X+hw, c.Y-hh, c.Z+hd)
	b.Vertex(c.X+hw, c.Y+hh, c.Z+hd)
	b.Vertex(c.X-hw, c.Y+hh, c.Z+hd)

	for _, f := range boxFaces {
		o := first - 1
		if err := b.Quad(f[0]+o, f[1]+o, f[2]+o, f[3]+o); err != nil {
			return 0, err
		}
	}

	return b.NextVertex(), nil
}

// Axis selects the direction a cylinder extends along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ringBasis returns the two in-plane directions used for cos and sin terms.
func (a Axis) ringBasis() (u, w, dir Vec3) {
	switch a {
	case AxisX:
		return Vec3{Z: 1}, Vec3{Y: 1}, Vec3{X: 1}
	case AxisZ:
		return Vec3{X: 1}, Vec3{Y: 1}, Vec3{Z: 1}
	default:
		return Vec3{X: 1}, Vec3{Z: 1}, Vec3{Y: 1}
	}
}

// Cylinder emits an open N-sided prism: the ring at base, the ring displaced
// by length along axis, and one side quad per segment. A negative length
// extends the other way. It returns the next free vertex index.
func Cylinder(b *Builder, base Vec3, axis Axis, length, radius float64, segments int) (int, error) {
	u, w, dir := axis.ringBasis()

	first := b.NextVertex()
	for ring := 0; ring < 2; ring++ {
		offset := float64(ring) * length
		for i := 0; i < segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			cu := radius * math.Cos(angle)
			sw := radius * math.Sin(angle)
			b.Vertex(
				base.X+u.X*cu+w.X*sw+dir.X*offset,
				base.Y+u.Y*cu+w.Y*sw+dir.Y*offset,
				base.Z+u.Z*cu+w.Z*sw+dir.Z*offset,
			)
		}
	}

	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		bottom, bottomNext := first+i, first+next
		if err := b.Quad(bottom, bottomNext, bottomNext+segments, bottom+segments); err != nil {
			return 0, err
		}
	}

	return b.NextVertex(), nil
}
