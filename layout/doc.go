// Package layout generates LED-index → grid-coordinate mapping tables for
// non-rectangular LED topologies: circles, flat rings, arcs, concentric
// multi-rings, radial rays, and fully custom position lists.
//
// What:
//
//   - Spec — a sealed sum type, one concrete variant per topology kind
//     (Circle, Ring, Arc, MultiRing, RadialRays, CustomPositions); invalid
//     field combinations are unrepresentable.
//   - Table — the immutable, LED-index-ordered list of grid cells produced
//     by Generate; feeds preview rendering and firmware export.
//   - Generate / Validate / Ensure — build, check, and lazily rebuild tables.
//   - Handle — a concurrency-safe holder that republishes tables via atomic
//     swap and invalidates by generation counter on spec edits.
//
// Geometry convention (fixed):
//
//   - Grid center is ((W−1)/2, (H−1)/2); for even dimensions it falls
//     between cells, keeping circular layouts symmetric.
//   - Angle 0° points along +x from the center; angles are degrees and
//     increase clockwise when rendered, because y grows downwards.
//   - Polar positions convert to cells by rounding half away from zero on
//     each axis, then clamping into [0,W)×[0,H).
//
// Ordering contracts:
//
//   - multi-ring layouts are ring-major: every LED of RingRadii[0] precedes
//     every LED of RingRadii[1], and radii are trusted in array order — the
//     mapper never reorders by magnitude, so "index 0 = outer" is expressed
//     by listing the outer radius first.
//   - radial rays are ray-major, and within a ray LED 0 is innermost.
//   - custom positions keep exactly the caller-supplied order.
//
// Collisions: distinct LED indices may legally round to the same cell (tiny
// radii collapse onto the center). Validate reports them as non-fatal
// Collision values; only CustomPositions treats duplicates as an error,
// since there the caller authored each cell explicitly.
//
// Errors: every configuration sentinel wraps ErrConfig, so callers can match
// the whole class with errors.Is(err, layout.ErrConfig) or a specific cause
// with errors.Is(err, layout.ErrRadius).
//
// Complexity: Generate is O(N) in the LED count; Table lookups are O(1).
package layout
