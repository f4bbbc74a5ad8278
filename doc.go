// Package ledgrid maps pixel art authored on a rectangular design grid onto
// physical addressable-LED hardware whose LEDs are anything but rectangular —
// circles, rings, concentric rings, radial spokes, custom-placed boards — and
// whose wiring path may zigzag or start from an arbitrary corner.
//
// 🚀 What is ledgrid?
//
//	A small, deterministic mapping engine in two halves:
//		• layout/  — LED-index → grid-coordinate tables for non-rectangular
//		  topologies (circle, ring, arc, multi-ring, radial rays, custom positions)
//		• wiring/  — bijective permutations between the canonical row-major
//		  design order and the hardware wiring order (row-major, serpentine,
//		  column-major, column-serpentine; any start corner; X/Y flips)
//
// ✨ Why choose ledgrid?
//
//   - Bit-exact and deterministic — the same spec and grid size always yield
//     identical tables, safe to feed firmware encoders
//   - Pure functions — no I/O, no global state, callable from any goroutine
//   - Cached where it counts — mapping tables republish via atomic swap,
//     wiring permutations memoize per (W,H,mode,corner,flip) key
//
// Supporting packages:
//
//	grid/    — shared grid primitives: coordinates, bounds, rounding
//	pattern/ — JSON pattern files carrying a layout spec plus its table
//	render/  — PNG previews of mapping tables and wiring paths
//
// Quick ASCII example — a 4-LED circle on a 5×5 grid:
//
//	. . 3 . .
//	. . . . .
//	2 . + . 0        LED 0 at angle 0° (+x), then clockwise (y grows down)
//	. . . . .
//	. . 1 . .
//
// See each package's doc.go for contracts, complexity and error semantics.
package ledgrid
