package meshio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/chewxy/math32"
	"github.com/cjhoward/siafu"
	"gonum.org/v1/gonum/spatial/r3"
)

// stlHeader mirrors soypat/sdf/render's own STL header: 80 reserved
// bytes followed by a little-endian triangle count.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlTriangleSize is the on-disk size, in bytes, of one STL triangle
// record: 12 floats (normal + 3 vertices) plus a 2-byte attribute count.
const stlTriangleSize = 50

// WriteSTL writes a binary STL file. STL has no vertex normals, so each
// triangle's stored normal is recomputed from its vertex positions by
// cross product — the same tradeoff soypat/sdf/render.WriteSTL makes,
// for the same reason.
func WriteSTL(w io.Writer, vertices []siafu.Vertex, triangles []siafu.Triangle) error {
	if len(triangles) == 0 {
		return errors.New("meshio: no triangles to write")
	}

	header := stlHeader{Count: uint32(len(triangles))}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	var buf [stlTriangleSize]byte
	for _, tr := range triangles {
		a, b, c := vertices[tr.A].P, vertices[tr.B].P, vertices[tr.C].P
		n := stlFaceNormal(a, b, c)
		put3F32Vec(buf[0:], n)
		put3F32Vec(buf[12:], a)
		put3F32Vec(buf[24:], b)
		put3F32Vec(buf[36:], c)
		binary.LittleEndian.PutUint16(buf[48:], 0)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func stlFaceNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

func put3F32Vec(b []byte, v r3.Vec) {
	_ = b[11]
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

func get3F32(b []byte) [3]float32 {
	_ = b[11]
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b)),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

// bad3F32 reports whether any component is NaN or infinite, the same
// check soypat/sdf/render's STL reader runs on every field it decodes.
func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

// ReadSTL reads a binary STL back into a flat, unshared vertex list — one
// triangle in, three vertices out, since STL carries no index buffer. It
// exists for round-trip testing (§8's STL law only claims triangle
// positions round-trip, not vertex sharing or normals, since STL stores
// face normals while Polygonize produces vertex normals).
func ReadSTL(r io.Reader) ([]siafu.Vertex, []siafu.Triangle, error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, nil, fmt.Errorf("meshio: STL header read failed: %w", err)
	}
	if header.Count == 0 {
		return nil, nil, errors.New("meshio: STL header indicates 0 triangles")
	}

	vertices := make([]siafu.Vertex, 0, header.Count*3)
	triangles := make([]siafu.Triangle, 0, header.Count)

	var buf [stlTriangleSize]byte
	for i := uint32(0); i < header.Count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, nil, fmt.Errorf("meshio: STL triangle %d/%d: %w", i+1, header.Count, err)
		}
		nf := get3F32(buf[0:])
		af := get3F32(buf[12:])
		bf := get3F32(buf[24:])
		cf := get3F32(buf[36:])
		if bad3F32(nf) || bad3F32(af) || bad3F32(bf) || bad3F32(cf) {
			return nil, nil, fmt.Errorf("meshio: STL triangle %d/%d: inf/NaN field", i+1, header.Count)
		}

		n := r3From3F32(nf)
		base := uint32(len(vertices))
		vertices = append(vertices,
			siafu.Vertex{P: r3From3F32(af), N: n},
			siafu.Vertex{P: r3From3F32(bf), N: n},
			siafu.Vertex{P: r3From3F32(cf), N: n},
		)
		triangles = append(triangles, siafu.Triangle{A: base, B: base + 1, C: base + 2})
	}
	return vertices, triangles, nil
}
