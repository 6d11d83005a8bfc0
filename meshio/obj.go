package meshio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cjhoward/siafu"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteOBJ writes a Wavefront OBJ mesh: one "v" line per vertex position,
// one "vn" line per vertex normal in the same order, then one "f" face
// line per triangle referencing 1-based position/normal indices.
//
// Floats are formatted with strconv.FormatFloat's shortest round-tripping
// representation, which always uses "." as the decimal separator
// regardless of the process locale.
func WriteOBJ(w io.Writer, vertices []siafu.Vertex, triangles []siafu.Triangle) error {
	bw := bufio.NewWriter(w)

	for _, v := range vertices {
		if err := writeOBJVec(bw, "v", v.P); err != nil {
			return err
		}
	}
	for _, v := range vertices {
		if err := writeOBJVec(bw, "vn", v.N); err != nil {
			return err
		}
	}
	for _, tr := range triangles {
		a, b, c := objIndex(tr.A+1), objIndex(tr.B+1), objIndex(tr.C+1)
		if _, err := bw.WriteString("f " + a + "//" + a + " " + b + "//" + b + " " + c + "//" + c + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeOBJVec(bw *bufio.Writer, tag string, v r3.Vec) error {
	_, err := bw.WriteString(tag + " " + formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z) + "\n")
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func objIndex(i uint32) string {
	return strconv.FormatUint(uint64(i), 10)
}
