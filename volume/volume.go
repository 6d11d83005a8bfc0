// Package volume loads a directory of ordered grayscale TIFF slices into a
// dense in-memory voxel buffer and exposes it as a siafu.Sampler.
package volume

import (
	"fmt"

	"github.com/cjhoward/siafu"
)

// Volume is a dense W x H x D grid of 8- or 16-bit grayscale samples,
// stored slice-major (all of slice 0, then all of slice 1, ...) with each
// slice row-major.
type Volume struct {
	Width, Height, Depth int
	BitsPerVoxel         int

	buf8  []uint8
	buf16 []uint16
}

// At returns the sample at (x, y, z), promoted to float64. It panics if
// the coordinate is out of range, matching siafu.Sampler's totality
// requirement: any Volume returned by Load is total over its own bounds.
func (v *Volume) At(x, y, z int) float64 {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height || z < 0 || z >= v.Depth {
		panic(fmt.Sprintf("volume: coordinate (%d,%d,%d) out of bounds (%d,%d,%d)", x, y, z, v.Width, v.Height, v.Depth))
	}
	i := x + v.Width*(y+v.Height*z)
	if v.BitsPerVoxel == 16 {
		return float64(v.buf16[i])
	}
	return float64(v.buf8[i])
}

// Sampler returns a siafu.Sampler closed over this volume's buffer.
func (v *Volume) Sampler() siafu.Sampler {
	return v.At
}
