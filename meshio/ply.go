package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"unsafe"

	"github.com/cjhoward/siafu"
	"gonum.org/v1/gonum/spatial/r3"
)

// hostByteOrder is probed once rather than switching on runtime.GOARCH, so
// it stays correct on any architecture this module is ever built for.
func hostByteOrder() binary.ByteOrder {
	var probe uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// WritePLY writes a binary_little_endian or binary_big_endian PLY file
// (matching the host's own byte order) with a text header, then packed
// vertex records (position, normal — 6 float32s) and face records (a
// uint8 count of 3, then three uint32 indices).
func WritePLY(w io.Writer, vertices []siafu.Vertex, triangles []siafu.Triangle) error {
	order := hostByteOrder()
	formatName := "binary_little_endian"
	if order == binary.BigEndian {
		formatName = "binary_big_endian"
	}

	bw := bufio.NewWriter(w)
	header := fmt.Sprintf(
		"ply\nformat %s 1.0\n"+
			"element vertex %d\n"+
			"property float x\nproperty float y\nproperty float z\n"+
			"property float nx\nproperty float ny\nproperty float nz\n"+
			"element face %d\n"+
			"property list uchar uint vertex_indices\n"+
			"end_header\n",
		formatName, len(vertices), len(triangles))
	if _, err := bw.WriteString(header); err != nil {
		return err
	}

	var vbuf [24]byte
	for _, v := range vertices {
		putVertexRecord(vbuf[:], order, v)
		if _, err := bw.Write(vbuf[:]); err != nil {
			return err
		}
	}

	var fbuf [13]byte
	for _, tr := range triangles {
		fbuf[0] = 3
		order.PutUint32(fbuf[1:], tr.A)
		order.PutUint32(fbuf[5:], tr.B)
		order.PutUint32(fbuf[9:], tr.C)
		if _, err := bw.Write(fbuf[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func putVertexRecord(b []byte, order binary.ByteOrder, v siafu.Vertex) {
	order.PutUint32(b[0:], math.Float32bits(float32(v.P.X)))
	order.PutUint32(b[4:], math.Float32bits(float32(v.P.Y)))
	order.PutUint32(b[8:], math.Float32bits(float32(v.P.Z)))
	order.PutUint32(b[12:], math.Float32bits(float32(v.N.X)))
	order.PutUint32(b[16:], math.Float32bits(float32(v.N.Y)))
	order.PutUint32(b[20:], math.Float32bits(float32(v.N.Z)))
}

func getVertexRecord(b []byte, order binary.ByteOrder) siafu.Vertex {
	return siafu.Vertex{
		P: r3.Vec{
			X: float64(math.Float32frombits(order.Uint32(b[0:]))),
			Y: float64(math.Float32frombits(order.Uint32(b[4:]))),
			Z: float64(math.Float32frombits(order.Uint32(b[8:]))),
		},
		N: r3.Vec{
			X: float64(math.Float32frombits(order.Uint32(b[12:]))),
			Y: float64(math.Float32frombits(order.Uint32(b[16:]))),
			Z: float64(math.Float32frombits(order.Uint32(b[20:]))),
		},
	}
}

// ReadPLY reads back a PLY file written by WritePLY. It only understands
// the fixed header layout WritePLY emits (vertex: 6 floats; face: uchar
// count then uint indices); it exists for round-trip testing, not as a
// general PLY reader.
func ReadPLY(r io.Reader) ([]siafu.Vertex, []siafu.Triangle, error) {
	br := bufio.NewReader(r)

	var order binary.ByteOrder
	var numVertices, numFaces int
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, nil, fmt.Errorf("meshio: PLY header read failed: %w", err)
		}
		switch {
		case strings.HasPrefix(line, "format binary_little_endian"):
			order = binary.LittleEndian
		case strings.HasPrefix(line, "format binary_big_endian"):
			order = binary.BigEndian
		case strings.HasPrefix(line, "element vertex"):
			fmt.Sscanf(line, "element vertex %d", &numVertices)
		case strings.HasPrefix(line, "element face"):
			fmt.Sscanf(line, "element face %d", &numFaces)
		case strings.HasPrefix(line, "end_header"):
			goto body
		}
	}
body:
	if order == nil {
		return nil, nil, fmt.Errorf("meshio: PLY header did not name a binary format")
	}

	vertices := make([]siafu.Vertex, numVertices)
	var vbuf [24]byte
	for i := range vertices {
		if _, err := io.ReadFull(br, vbuf[:]); err != nil {
			return nil, nil, fmt.Errorf("meshio: PLY vertex %d: %w", i, err)
		}
		vertices[i] = getVertexRecord(vbuf[:], order)
	}

	triangles := make([]siafu.Triangle, numFaces)
	var fbuf [13]byte
	for i := range triangles {
		if _, err := io.ReadFull(br, fbuf[:]); err != nil {
			return nil, nil, fmt.Errorf("meshio: PLY face %d: %w", i, err)
		}
		if fbuf[0] != 3 {
			return nil, nil, fmt.Errorf("meshio: PLY face %d has %d indices, want 3", i, fbuf[0])
		}
		triangles[i] = siafu.Triangle{
			A: order.Uint32(fbuf[1:]),
			B: order.Uint32(fbuf[5:]),
			C: order.Uint32(fbuf[9:]),
		}
	}

	return vertices, triangles, nil
}
