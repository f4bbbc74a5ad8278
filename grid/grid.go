package grid

import "math"

// Coord identifies a single cell on the design grid.
// X grows rightwards, Y grows downwards (screen convention).
type Coord struct {
	X, Y int
}

// InBounds reports whether (x,y) lies within a w×h grid.
// Complexity: O(1).
func InBounds(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

// Index maps (x,y) to its row-major linear index: y·w + x.
// The caller is responsible for bounds; see InBounds.
// Complexity: O(1).
func Index(x, y, w int) int {
	return y*w + x
}

// CoordOf converts a row-major linear index back to a Coord.
// Complexity: O(1).
func CoordOf(idx, w int) Coord {
	return Coord{X: idx % w, Y: idx / w}
}

// Round returns the nearest integer to v, rounding halves away from zero.
// This is the single rounding rule used when continuous layout geometry is
// snapped onto discrete cells: 0.5→1, −0.5→−1, 2.49→2.
// Complexity: O(1).
func Round(v float64) int {
	return int(math.Round(v))
}

// Clamp constrains v into [lo, hi].
// Complexity: O(1).
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Snap converts a continuous position to the nearest in-bounds cell of a
// w×h grid: Round on each axis, then Clamp into [0,w)×[0,h).
// Complexity: O(1).
func Snap(x, y float64, w, h int) Coord {
	return Coord{
		X: Clamp(Round(x), 0, w-1),
		Y: Clamp(Round(y), 0, h-1),
	}
}

// Center returns the geometric center of a w×h grid: ((w−1)/2, (h−1)/2).
// For even dimensions this falls between cells, which is intentional — it
// keeps circular layouts symmetric on the physical board.
// Complexity: O(1).
func Center(w, h int) (cx, cy float64) {
	return float64(w-1) / 2, float64(h-1) / 2
}
