// Package meshio serializes an indexed triangle mesh produced by siafu to
// Wavefront OBJ, Stanford PLY, or binary STL.
package meshio

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/cjhoward/siafu"
)

// Format selects a mesh serialization.
type Format int

const (
	FormatPLY Format = iota
	FormatOBJ
	FormatSTL
)

// FormatFromExtension maps a file extension to a Format. Matching is
// case-sensitive: ".obj" selects OBJ, ".stl" selects STL, and anything
// else — including ".ply" and no extension at all — selects PLY.
func FormatFromExtension(path string) Format {
	switch filepath.Ext(path) {
	case ".obj":
		return FormatOBJ
	case ".stl":
		return FormatSTL
	default:
		return FormatPLY
	}
}

// Write serializes vertices and triangles to w in the given format.
func Write(w io.Writer, format Format, vertices []siafu.Vertex, triangles []siafu.Triangle) error {
	switch format {
	case FormatOBJ:
		return WriteOBJ(w, vertices, triangles)
	case FormatSTL:
		return WriteSTL(w, vertices, triangles)
	case FormatPLY:
		return WritePLY(w, vertices, triangles)
	default:
		return fmt.Errorf("meshio: unknown format %d", format)
	}
}
