// Package grid provides the shared primitives every mapper in ledgrid is
// built on: integer cell coordinates on a W×H design grid, bounds checks,
// row-major linearization, and the rounding/clamping rules used when
// continuous geometry is snapped onto discrete cells.
//
// What:
//
//   - Coord — a single cell (X,Y) with X ∈ [0,W), Y ∈ [0,H).
//   - Index / CoordOf — row-major (y·W+x) linearization and its inverse.
//   - Round — nearest integer, ties away from zero (the one rounding rule
//     used everywhere a float position becomes a cell).
//   - Snap — round a continuous (x,y) and clamp it into the grid.
//   - Center — the geometric grid center ((W−1)/2, (H−1)/2), the origin for
//     all polar layouts.
//
// Why:
//
//   - Every mapping table and wiring permutation must agree on one indexing
//     and one rounding convention, or physical displays come out shifted by
//     a pixel. Centralizing the convention here makes disagreement impossible.
//
// Complexity: all functions are O(1) and allocation-free.
package grid
