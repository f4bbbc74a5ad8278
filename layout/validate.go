package layout

import (
	"math"

	"github.com/ledforge/ledgrid/grid"
)

// finite reports whether every value is a usable real number.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Validate checks LED count, radius, and angle finiteness.
func (s Circle) Validate() error {
	if s.LEDs <= 0 {
		return ErrLEDCount
	}
	if s.Radius < 0 || !finite(s.Radius) {
		return ErrRadius
	}
	if !finite(s.StartAngle, s.EndAngle) {
		return ErrAngleRange
	}

	return nil
}

// Validate checks LED count, the inner<outer radius ordering, and angles.
func (s Ring) Validate() error {
	if s.LEDs <= 0 {
		return ErrLEDCount
	}
	if !finite(s.InnerRadius, s.OuterRadius) || s.InnerRadius < 0 || s.InnerRadius >= s.OuterRadius {
		return ErrRadius
	}
	if !finite(s.StartAngle, s.EndAngle) {
		return ErrAngleRange
	}

	return nil
}

// Validate checks LED count, radius, and that the arc is non-degenerate.
func (s Arc) Validate() error {
	if s.LEDs <= 0 {
		return ErrLEDCount
	}
	if s.Radius < 0 || !finite(s.Radius) {
		return ErrRadius
	}
	if !finite(s.StartAngle, s.EndAngle) || s.StartAngle == s.EndAngle {
		return ErrAngleRange
	}

	return nil
}

// Validate checks ring alignment, per-ring counts and radii, and the angle.
func (s MultiRing) Validate() error {
	if len(s.RingLEDs) == 0 || len(s.RingLEDs) != len(s.RingRadii) {
		return ErrRingMismatch
	}
	for _, n := range s.RingLEDs {
		if n <= 0 {
			return ErrLEDCount
		}
	}
	for _, r := range s.RingRadii {
		if r < 0 || !finite(r) {
			return ErrRadius
		}
	}
	if !finite(s.StartAngle) {
		return ErrAngleRange
	}

	return nil
}

// Validate checks ray/LED counts, the inner≤outer radius pair, and spacing.
func (s RadialRays) Validate() error {
	if s.Rays <= 0 {
		return ErrRayCount
	}
	if s.LEDsPerRay <= 0 {
		return ErrLEDCount
	}
	if !finite(s.InnerRadius, s.OuterRadius) || s.InnerRadius < 0 || s.OuterRadius < s.InnerRadius {
		return ErrRadius
	}
	if !finite(s.SpacingAngle) {
		return ErrAngleRange
	}

	return nil
}

// Validate checks the position list, unit, pitch, and finiteness.
func (s CustomPositions) Validate() error {
	if len(s.Positions) == 0 {
		return ErrNoPositions
	}
	switch s.Unit {
	case UnitGrid, UnitMillimeter, UnitInch:
	default:
		return ErrUnit
	}
	if s.Pitch < 0 || !finite(s.Pitch) {
		return ErrPitch
	}
	if !finite(s.Center.X, s.Center.Y) {
		return ErrPosition
	}
	for _, p := range s.Positions {
		if !finite(p.X, p.Y) {
			return ErrPosition
		}
	}

	return nil
}

// Collision records two LED indices that rounded to the same grid cell.
// First is the lowest index mapped to Cell; Dup is a later index that landed
// on it. Collisions are non-fatal for polar layouts: preview treats them as
// last-writer-wins and hardware export reads per LED index, not per cell.
type Collision struct {
	Cell  grid.Coord
	First int
	Dup   int
}

// Validate checks a stored table against its spec and the current grid size:
// grid-size match, length match, every entry in bounds. Duplicate cells are
// returned as Collision warnings; for CustomPositions they are an error
// instead, since there every cell was authored explicitly.
//
// A nil error (regardless of warnings) means the table is publishable.
// Complexity: O(N) time and O(N) memory for the duplicate scan.
func Validate(t *Table, spec Spec, w, h int) ([]Collision, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if spec == nil {
		return nil, ErrNilSpec
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	tw, th := t.Size()
	if tw != w || th != h {
		return nil, ErrGridMismatch
	}
	if t.Len() != spec.LEDCount() {
		return nil, ErrTableLength
	}

	first := make(map[grid.Coord]int, t.Len())
	var collisions []Collision
	for i, c := range t.coords {
		if !grid.InBounds(c.X, c.Y, w, h) {
			return nil, ErrTableBounds
		}
		if f, seen := first[c]; seen {
			collisions = append(collisions, Collision{Cell: c, First: f, Dup: i})
		} else {
			first[c] = i
		}
	}
	if len(collisions) > 0 && spec.Kind() == KindCustomPositions {
		return collisions, ErrTableCollision
	}

	return collisions, nil
}
