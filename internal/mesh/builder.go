// Package mesh accumulates Wavefront OBJ geometry and writes it as text.
//
// OBJ indices are 1-based and may only refer to elements emitted earlier in
// the stream, so a Builder tracks how many vertices, texture coordinates and
// normals exist and rejects faces that point past them.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrForwardReference is returned when a face cites an element that has not been emitted.
	ErrForwardReference = errors.New("face references an element not yet emitted")
	// ErrDegenerateFace is returned for faces with fewer than three corners.
	ErrDegenerateFace = errors.New("face needs at least three corners")
)

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Ref is one face corner. Zero VT or VN means the attribute is absent.
type Ref struct {
	V, VT, VN int
}

// V returns a position-only corner.
func V(i int) Ref { return Ref{V: i} }

// VN returns a position//normal corner.
func VN(v, n int) Ref { return Ref{V: v, VN: n} }

// VTN returns a position/texcoord/normal corner.
func VTN(v, vt, n int) Ref { return Ref{V: v, VT: vt, VN: n} }

// String formats the corner in OBJ syntax.
func (r Ref) String() string {
	switch {
	case r.VT == 0 && r.VN == 0:
		return strconv.Itoa(r.V)
	case r.VN == 0:
		return fmt.Sprintf("%d/%d", r.V, r.VT)
	case r.VT == 0:
		return fmt.Sprintf("%d//%d", r.V, r.VN)
	default:
		return fmt.Sprintf("%d/%d/%d", r.V, r.VT, r.VN)
	}
}

// Builder is the append-only accumulator for one mesh.
type Builder struct {
	header    []string
	lines     []string
	vertices  int
	texcoords int
	normals   int
	faces     int
}

// NewBuilder starts a mesh with the given comment header lines.
func NewBuilder(comments ...string) *Builder {
	return &Builder{header: comments}
}

// Vertex emits a position and returns its 1-based index.
func (b *Builder) Vertex(x, y, z float64) int {
	b.lines = append(b.lines, "v "+formatFloats(x, y, z))
	b.vertices++
	return b.vertices
}

// TexCoord emits a texture coordinate and returns its 1-based index.
func (b *Builder) TexCoord(u, v float64) int {
	b.lines = append(b.lines, "vt "+formatFloats(u, v))
	b.texcoords++
	return b.texcoords
}

// Normal emits a normal and returns its 1-based index.
func (b *Builder) Normal(x, y, z float64) int {
	b.lines = append(b.lines, "vn "+formatFloats(x, y, z))
	b.normals++
	return b.normals
}

// Face emits a polygon. Every index must already exist.
func (b *Builder) Face(refs ...Ref) error {
	if len(refs) < 3 {
		return ErrDegenerateFace
	}

	parts := make([]string, len(refs))
	for i, r := range refs {
		if err := b.check(r); err != nil {
			return err
		}
		parts[i] = r.String()
	}

	b.lines = append(b.lines, "f "+strings.Join(parts, " "))
	b.faces++
	return nil
}

// Quad emits a position-only quad.
func (b *Builder) Quad(v1, v2, v3, v4 int) error {
	return b.Face(V(v1), V(v2), V(v3), V(v4))
}

// Triangle emits a position-only triangle.
func (b *Builder) Triangle(v1, v2, v3 int) error {
	return b.Face(V(v1), V(v2), V(v3))
}

func (b *Builder) check(r Ref) error {
	if r.V < 1 || r.V > b.vertices {
		return fmt.Errorf("%w: vertex %d of %d", ErrForwardReference, r.V, b.vertices)
	}
	if r.VT < 0 || r.VT > b.texcoords {
		return fmt.Errorf("%w: texcoord %d of %d", ErrForwardReference, r.VT, b.texcoords)
	}
	if r.VN < 0 || r.VN > b.normals {
		return fmt.Errorf("%w: normal %d of %d", ErrForwardReference, r.VN, b.normals)
	}
	return nil
}

// NextVertex returns the index the next emitted vertex will receive.
func (b *Builder) NextVertex() int { return b.vertices + 1 }

// Vertices returns the number of emitted vertices.
func (b *Builder) Vertices() int { return b.vertices }

// TexCoords returns the number of emitted texture coordinates.
func (b *Builder) TexCoords() int { return b.texcoords }

// Normals returns the number of emitted normals.
func (b *Builder) Normals() int { return b.normals }

// Faces returns the number of emitted faces.
func (b *Builder) Faces() int { return b.faces }

// WriteTo writes the header comments, a blank line and every data line in
// emission order.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	write := func(s string) error {
		m, err := bw.WriteString(s)
		n += int64(m)
		return err
	}

	for _, c := range b.header {
		if err := write("# " + c + "\n"); err != nil {
			return n, err
		}
	}
	if len(b.header) > 0 {
		if err := write("\n"); err != nil {
			return n, err
		}
	}
	for _, l := range b.lines {
		if err := write(l + "\n"); err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// WriteFile writes the mesh to path, replacing any existing file.
func WriteFile(path string, b *Builder) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	n, err = b.WriteTo(f)
	if err != nil {
		return n, fmt.Errorf("failed to write mesh: %w", err)
	}
	return n, nil
}

func formatFloats(vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
