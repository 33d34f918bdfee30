package mesh

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestSingleBox(t *testing.T) {
	b := NewBuilder("Box")
	next, err := Box(b, Vec3{}, Vec3{2, 2, 2})
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	if next != 9 {
		t.Errorf("expected next free index 9, got %d", next)
	}

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	var vLines, fLines int
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			vLines++
			for _, c := range fields[1:] {
				if c != "1" && c != "-1" {
					t.Errorf("expected unit coordinates, got %q", scanner.Text())
				}
			}
		case "f":
			fLines++
			if len(fields) != 5 {
				t.Fatalf("expected quad face, got %q", scanner.Text())
			}
			seen := map[int]bool{}
			for _, c := range fields[1:] {
				idx, err := strconv.Atoi(c)
				if err != nil {
					t.Fatalf("bad index %q", c)
				}
				if idx < 1 || idx > 8 {
					t.Errorf("index %d outside 1..8", idx)
				}
				seen[idx] = true
			}
			if len(seen) != 4 {
				t.Errorf("face %q does not use 4 distinct indices", scanner.Text())
			}
		}
	}

	if vLines != 8 || fLines != 6 {
		t.Errorf("expected 8 v and 6 f lines, got %d and %d", vLines, fLines)
	}
}

func TestChainedBoxesOffsetIndices(t *testing.T) {
	b := NewBuilder()
	next, err := Box(b, Vec3{}, Vec3{1, 1, 1})
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	next, err = Box(b, Vec3{X: 3}, Vec3{1, 1, 1})
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	if next != 17 {
		t.Errorf("expected next free index 17, got %d", next)
	}

	var buf bytes.Buffer
	b.WriteTo(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	secondFaces := lines[len(lines)-6:]
	if secondFaces[0] != "f 9 10 11 12" {
		t.Errorf("expected first face of second box to be offset by 8, got %q", secondFaces[0])
	}
	if secondFaces[5] != "f 10 14 15 11" {
		t.Errorf("expected last face of second box to be 'f 10 14 15 11', got %q", secondFaces[5])
	}
}

func TestFaceRejectsForwardReferences(t *testing.T) {
	b := NewBuilder()
	b.Vertex(0, 0, 0)
	b.Vertex(1, 0, 0)
	b.Vertex(0, 1, 0)

	testCases := []struct {
		name string
		refs []Ref
		want error
	}{
		{"vertex past end", []Ref{V(1), V(2), V(4)}, ErrForwardReference},
		{"zero vertex", []Ref{V(0), V(1), V(2)}, ErrForwardReference},
		{"missing texcoord", []Ref{{V: 1, VT: 1}, {V: 2, VT: 1}, {V: 3, VT: 1}}, ErrForwardReference},
		{"missing normal", []Ref{VN(1, 1), VN(2, 1), VN(3, 1)}, ErrForwardReference},
		{"two corners", []Ref{V(1), V(2)}, ErrDegenerateFace},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := b.Face(tc.refs...)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if b.Faces() != 0 {
		t.Errorf("rejected faces must not be emitted, got %d", b.Faces())
	}
	if err := b.Triangle(1, 2, 3); err != nil {
		t.Errorf("valid triangle rejected: %v", err)
	}
}

func TestRefString(t *testing.T) {
	testCases := []struct {
		ref  Ref
		want string
	}{
		{V(3), "3"},
		{Ref{V: 3, VT: 2}, "3/2"},
		{VN(3, 1), "3//1"},
		{VTN(3, 2, 1), "3/2/1"},
	}
	for _, tc := range testCases {
		if got := tc.ref.String(); got != tc.want {
			t.Errorf("Ref%+v.String() = %q, want %q", tc.ref, got, tc.want)
		}
	}
}

func TestWriteToOrderAndFormatting(t *testing.T) {
	b := NewBuilder("Sample", "Second line")
	b.Vertex(-0.3, 0.15, 0)
	b.TexCoord(0.5, 1)
	b.Normal(0, 1, 0)
	if err := b.Face(VTN(1, 1, 1), VTN(1, 1, 1), VTN(1, 1, 1)); err != nil {
		t.Fatalf("Face failed: %v", err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, buffer has %d", n, buf.Len())
	}

	want := "# Sample\n# Second line\n\nv -0.3 0.15 0\nvt 0.5 1\nvn 0 1 0\nf 1/1/1 1/1/1 1/1/1\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestCylinder(t *testing.T) {
	b := NewBuilder()
	next, err := Cylinder(b, Vec3{}, AxisY, 4, 0.4, 8)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	if next != 17 {
		t.Errorf("expected next free index 17, got %d", next)
	}
	if b.Vertices() != 16 || b.Faces() != 8 {
		t.Errorf("expected 16 vertices and 8 faces, got %d and %d", b.Vertices(), b.Faces())
	}

	var buf bytes.Buffer
	b.WriteTo(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "v 0.4 0 0" {
		t.Errorf("expected first ring vertex at (0.4,0,0), got %q", lines[0])
	}
	if lines[8] != "v 0.4 4 0" {
		t.Errorf("expected first top vertex at (0.4,4,0), got %q", lines[8])
	}
	if lines[len(lines)-1] != "f 8 1 9 16" {
		t.Errorf("expected wrap-around face 'f 8 1 9 16', got %q", lines[len(lines)-1])
	}
}

func TestCylinderAlongNegativeX(t *testing.T) {
	b := NewBuilder()
	b.Vertex(0, 0, 0) // existing geometry shifts indices
	if _, err := Cylinder(b, Vec3{X: -0.4, Y: 2.5}, AxisX, -1.5, 0.25, 4); err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	var buf bytes.Buffer
	b.WriteTo(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "v -0.4 2.5 0.25" {
		t.Errorf("expected first arm vertex at (-0.4,2.5,0.25), got %q", lines[1])
	}
	if lines[5] != "v -1.9 2.5 0.25" {
		t.Errorf("expected far ring at x=-1.9, got %q", lines[5])
	}
	if lines[9] != "f 2 3 7 6" {
		t.Errorf("expected first side face 'f 2 3 7 6', got %q", lines[9])
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.obj")
	b := NewBuilder("Box")
	if _, err := Box(b, Vec3{}, Vec3{1, 1, 1}); err != nil {
		t.Fatalf("Box failed: %v", err)
	}

	n, err := WriteFile(path, b)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() != n {
		t.Errorf("file size %d does not match reported %d", info.Size(), n)
	}

	if _, err := WriteFile(filepath.Join(t.TempDir(), "nope", "box.obj"), b); err == nil {
		t.Error("expected error for missing parent directory")
	}
}
