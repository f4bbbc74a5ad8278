// Package wiring builds the bijection between the canonical row-major
// design order of a W×H pixel grid and the hardware order in which an
// addressable LED strip or PCB actually receives color data.
//
// What:
//
//   - Spec — wiring mode (row-major, serpentine, column-major,
//     column-serpentine), start corner, and independent X/Y flips. Spec is a
//     comparable value, usable directly as a cache key.
//   - Permutation — hardware LED index → design index table, with the
//     inverse precomputed once.
//   - DesignToHardware / HardwareToDesign — reorder a pixel buffer between
//     the two orders; pure, never mutate their input, always allocate fresh
//     output.
//   - Cache — memoizes permutations per Spec, so a redraw loop never
//     rebuilds the same table frame after frame.
//
// Traversal contract:
//
//   - The start corner fixes hardware index 0 (TopLeft ⇒ design index 0)
//     and the initial direction along both axes.
//   - Serpentine reverses every other row (column-serpentine: every other
//     column), starting in the corner-implied direction.
//   - FlipX/FlipY reflect every generated coordinate (x′=W−1−x, y′=H−1−y)
//     after traversal; they compose with any mode and corner.
//
// Determinism: Build is a pure function of its Spec; identical specs yield
// identical permutations.
//
// Errors:
//
//   - ErrBadGrid: non-positive width or height.
//   - ErrUnknownMode / ErrUnknownCorner: enum value outside the closed set.
//   - ErrSizeMismatch: pixel buffer length ≠ W·H in a transform.
//
// Complexity: Build is O(W·H); transforms are O(W·H); cache hits are O(1).
package wiring
