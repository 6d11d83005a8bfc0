package siafu

// V3i is a 3D integer lattice coordinate: a cube corner, or the lattice
// vertex a crossed edge is anchored to.
type V3i [3]int

// flatIndex returns the row-major index of a within a W x H x (any depth)
// lattice, ignoring Z-bounds since callers reduce Z modulo a cache size
// before or after calling this.
func (a V3i) flatIndex(w, h int) int {
	return a[0] + w*(a[1]+h*a[2])
}
