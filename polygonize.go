package siafu

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// interpEpsilon is the field-difference threshold below which edge
	// interpolation falls back to the edge midpoint instead of dividing by
	// a near-zero denominator.
	interpEpsilon = 1e-6
	// gradientEpsilon is the squared-length threshold below which a
	// gradient is considered degenerate and reported as a zero normal.
	gradientEpsilon = 1e-6
	// noSlot marks an empty vertex-cache entry. Go indices are signed, so
	// -1 serves the role the C original fills with all-ones.
	noSlot = -1
)

// vertexOut names, for one cube, the mesh vertex index assigned to each of
// the 12 cube edges that was actually crossed this cube.
type vertexOut [12]uint32

// Polygonize extracts a Marching Cubes isosurface from the scalar field
// sampled by sample, at threshold isolevel, over the lattice
// [0,W) x [0,H) x [0,D), and appends the resulting vertices and triangles
// to *vertices and *triangles.
//
// The mesh is mapped into [-1,+1]^3 along the longest axis; shorter axes
// use the same scale, so voxel aspect ratio is preserved. With
// M = max(W-1, H-1, D-1), scale = 2/M and translation = (-1,-1,-1), a
// lattice point (i,j,k) maps to scale*(i,j,k) + translation.
//
// If W, H or D is zero, Polygonize appends nothing. Given identical
// inputs, two calls produce byte-identical vertex and triangle sequences:
// the sweep order (z-major, y-major, x-major) and the fixed per-cube edge
// order are both deterministic.
func Polygonize(isolevel float64, sample Sampler, w, h, d int, vertices *[]Vertex, triangles *[]Triangle) {
	maxX := w - 1
	maxY := h - 1
	maxZ := d - 1
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if maxZ < 0 {
		maxZ = 0
	}
	if w <= 0 || h <= 0 || d <= 0 {
		return
	}

	m := maxX
	if maxY > m {
		m = maxY
	}
	if maxZ > m {
		m = maxZ
	}
	scale := 2.0
	if m > 0 {
		scale = 2.0 / float64(m)
	}
	translate := r3.Vec{X: -1, Y: -1, Z: -1}

	sliceArea := w * h
	voxels := newVoxelCache(sample, w, h, d)
	vcache := newVertexCache(sliceArea)

	minCachedVertexZ := math.Inf(-1)

	// Y- and Z-coordinates of the 8 cube corners for the current (y,z);
	// the X-coordinates are filled in lazily, per-edge, in the loop below.
	var cornerPos [8]r3.Vec

	for z := 0; z < maxZ; z++ {
		voxels.prefetch(z + 2)

		for i := 0; i < 8; i++ {
			cornerPos[i].Z = float64(z+cornerOffset[i][2])*scale + translate.Z
		}

		for y := 0; y < maxY; y++ {
			for i := 0; i < 8; i++ {
				cornerPos[i].Y = float64(y+cornerOffset[i][1])*scale + translate.Y
			}

			for x := 0; x < maxX; x++ {
				config := 0
				var cornerVal [8]float64
				for i := 0; i < 8; i++ {
					cx := x + cornerOffset[i][0]
					cy := y + cornerOffset[i][1]
					cz := z + cornerOffset[i][2]
					v := voxels.at(cx, cy, cz)
					cornerVal[i] = v
					if v < isolevel {
						config |= 1 << uint(i)
					}
				}

				edgeMask := edgeTable[config]
				if edgeMask == 0 {
					continue
				}

				var vout vertexOut
				for e := 0; e < 12; e++ {
					if edgeMask&(1<<uint(e)) == 0 {
						continue
					}

					v1 := edgeCorner1[e]
					v2 := edgeCorner2[e]
					lattice1 := V3i{
						x + cornerOffset[v1][0],
						y + cornerOffset[v1][1],
						z + cornerOffset[v1][2],
					}
					direction := edgeDirection[e]

					if idx, ok := vcache.get(lattice1, direction, w, h); ok && (*vertices)[idx].P.Z >= minCachedVertexZ {
						vout[e] = uint32(idx)
						continue
					}

					lattice2 := V3i{
						x + cornerOffset[v2][0],
						y + cornerOffset[v2][1],
						z + cornerOffset[v2][2],
					}

					cornerPos[v1].X = float64(x+cornerOffset[v1][0])*scale + translate.X
					cornerPos[v2].X = float64(x+cornerOffset[v2][0])*scale + translate.X

					p1 := cornerPos[v1]
					p2 := cornerPos[v2]
					s1 := cornerVal[v1]
					s2 := cornerVal[v2]

					var t float64
					if math.Abs(s1-s2) < interpEpsilon {
						t = 0.5
					} else {
						t = (isolevel - s1) / (s2 - s1)
					}

					pos := r3.Add(p1, r3.Scale(t, r3.Sub(p2, p1)))

					g1 := voxels.gradient(lattice1[0], lattice1[1], lattice1[2], maxX, maxY, maxZ)
					g2 := voxels.gradient(lattice2[0], lattice2[1], lattice2[2], maxX, maxY, maxZ)
					g := r3.Add(g1, r3.Scale(t, r3.Sub(g2, g1)))
					n := unitOrZero(g)

					newIdx := uint32(len(*vertices))
					*vertices = append(*vertices, Vertex{P: pos, N: n})
					vcache.set(lattice1, direction, w, h, int(newIdx))
					vout[e] = newIdx
				}

				tri := triangleTable[config]
				for i := 0; i < 15 && tri&0xf != 0xf; i += 3 {
					a := vout[tri&0xf]
					b := vout[(tri>>4)&0xf]
					c := vout[(tri>>8)&0xf]
					tri >>= 12
					if a != b && a != c && b != c {
						*triangles = append(*triangles, Triangle{A: a, B: b, C: c})
					}
				}
			}
		}

		minCachedVertexZ = cornerPos[7].Z
	}
}

// unitOrZero returns g normalized to unit length, or the zero vector if g
// is too short to normalize reliably (a degenerate, implementation-defined
// region of the field).
func unitOrZero(g r3.Vec) r3.Vec {
	sqrLen := g.X*g.X + g.Y*g.Y + g.Z*g.Z
	if sqrLen <= gradientEpsilon {
		return r3.Vec{}
	}
	return r3.Scale(1/math.Sqrt(sqrLen), g)
}
