package siafu

import "gonum.org/v1/gonum/spatial/r3"

// voxelCache holds four consecutive Z-slices of scalar samples, enough to
// classify any cube whose base is at the current sweep Z and to compute
// central-difference gradients at any of that cube's corners.
type voxelCache struct {
	sample  Sampler
	w, h, d int
	buf     []float64
}

func newVoxelCache(sample Sampler, w, h, d int) *voxelCache {
	vc := &voxelCache{sample: sample, w: w, h: h, d: d, buf: make([]float64, 4*w*h)}
	vc.fill(0)
	if d > 1 {
		vc.fill(1)
	}
	return vc
}

func (vc *voxelCache) fill(z int) {
	base := (z % 4) * vc.w * vc.h
	for y := 0; y < vc.h; y++ {
		row := base + vc.w*y
		for x := 0; x < vc.w; x++ {
			vc.buf[row+x] = vc.sample(x, y, z)
		}
	}
}

// prefetch caches Z-slice z if it lies within the volume; it is a no-op
// past the last slice, since the caller only ever asks for z+2 one step
// ahead of the sweep front.
func (vc *voxelCache) prefetch(z int) {
	if z < vc.d {
		vc.fill(z)
	}
}

func (vc *voxelCache) at(x, y, z int) float64 {
	return vc.buf[x+vc.w*(y+vc.h*(z%4))]
}

// gradient central-differences the field at lattice point (x,y,z), with
// each axis independently clamped to its valid range so boundary points
// fall back to a one-sided difference. The sign convention points from
// high to low field values, so a unit-normalized gradient is an outward
// normal wherever the interior of the surface is the "< isolevel" region.
func (vc *voxelCache) gradient(x, y, z, maxX, maxY, maxZ int) r3.Vec {
	x0, x1 := clampInt(x-1, 0, maxX), clampInt(x+1, 0, maxX)
	y0, y1 := clampInt(y-1, 0, maxY), clampInt(y+1, 0, maxY)
	z0, z1 := clampInt(z-1, 0, maxZ), clampInt(z+1, 0, maxZ)
	return r3.Vec{
		X: vc.at(x0, y, z) - vc.at(x1, y, z),
		Y: vc.at(x, y0, z) - vc.at(x, y1, z),
		Z: vc.at(x, y, z0) - vc.at(x, y, z1),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// vertexCache is a ring of mesh-vertex slots over the last two Z-layers of
// lattice vertices, indexed by (lattice index mod 2*sliceArea) and edge
// direction. It never grows past the size fixed at construction: the ring
// modulus, not a generation counter, is what bounds its memory to two
// Z-layers regardless of volume depth.
type vertexCache struct {
	slots    []int
	capacity int // 2 * sliceArea
}

func newVertexCache(sliceArea int) *vertexCache {
	capacity := 2 * sliceArea
	slots := make([]int, capacity*3)
	for i := range slots {
		slots[i] = noSlot
	}
	return &vertexCache{slots: slots, capacity: capacity}
}

func (vc *vertexCache) key(c V3i, direction, w, h int) int {
	ring := c.flatIndex(w, h) % vc.capacity
	return ring*3 + direction
}

// get reports the cached vertex index for the edge owned by lattice vertex
// c running in the given direction, if any slot has been written there.
// The caller is still responsible for checking the returned vertex's Z
// against the sweep's freshness threshold before trusting the hit.
func (vc *vertexCache) get(c V3i, direction, w, h int) (int, bool) {
	idx := vc.slots[vc.key(c, direction, w, h)]
	if idx == noSlot {
		return 0, false
	}
	return idx, true
}

func (vc *vertexCache) set(c V3i, direction, w, h, vertexIndex int) {
	vc.slots[vc.key(c, direction, w, h)] = vertexIndex
}
