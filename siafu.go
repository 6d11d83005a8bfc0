// Package siafu implements Marching Cubes isosurface extraction over a
// scalar field sampled on an integer lattice.
//
// The polygonizer sweeps the field one Z-slice at a time, holding only a
// bounded window of samples and already-created vertices in memory, so the
// cost of extracting a surface from a volume does not depend on how many
// slices are behind the current sweep front.
package siafu

import "gonum.org/v1/gonum/spatial/r3"

// Sampler maps an integer lattice coordinate to a scalar field value. It
// must be total over [0, W) x [0, H) x [0, D) for the dimensions passed to
// Polygonize, and it must be pure: Polygonize may call it more than once
// per coordinate and caches its results only for the lifetime of one call.
//
// A Sampler that cannot produce a value should panic; Polygonize has no
// error channel to propagate a sampling failure through.
type Sampler func(x, y, z int) float64

// Vertex is an isosurface vertex: a position and an outward unit normal
// derived from the scalar field gradient, both in the coordinate system
// Polygonize maps the lattice into (see Polygonize's doc comment). Where
// the gradient is too short to normalize, the normal is the zero vector.
type Vertex struct {
	P r3.Vec
	N r3.Vec
}

// Triangle is an isosurface triangle, given as indices into the vertex
// slice a caller passed to Polygonize.
type Triangle struct {
	A, B, C uint32
}
