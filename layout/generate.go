package layout

import (
	"math"

	"github.com/ledforge/ledgrid/grid"
)

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Generate builds the mapping table for spec on a w×h design grid.
// It fails with an ErrConfig-class sentinel on any invalid parameter and
// never produces a partial table. Two calls with identical inputs produce
// identical tables.
//
// Complexity: O(N) time and memory, N = spec.LEDCount().
func Generate(spec Spec, w, h int) (*Table, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	if w <= 0 || h <= 0 {
		return nil, ErrGridSize
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return newTable(spec.place(w, h), w, h), nil
}

// polarCell converts (radius, angle°) around center (cx,cy) to an in-bounds
// cell. Angle 0° points along +x; angles increase clockwise because y grows
// downwards.
func polarCell(cx, cy, radius, angleDeg float64, w, h int) grid.Coord {
	rad := angleDeg * degToRad

	return grid.Snap(cx+radius*math.Cos(rad), cy+radius*math.Sin(rad), w, h)
}

// arcCells spreads n LEDs over [start, start+span) degrees at a fixed
// radius, appending to dst. The step is span/n, so a full revolution never
// duplicates LED 0 at the far end.
func arcCells(dst []grid.Coord, n int, radius, start, span float64, w, h int) []grid.Coord {
	cx, cy := grid.Center(w, h)
	step := span / float64(n)
	for i := 0; i < n; i++ {
		dst = append(dst, polarCell(cx, cy, radius, start+float64(i)*step, w, h))
	}

	return dst
}

// fullSpan widens an equal start/end angle pair into a full revolution.
func fullSpan(start, end float64) float64 {
	if span := end - start; span != 0 {
		return span
	}

	return 360
}

func (s Circle) place(w, h int) []grid.Coord {
	return arcCells(make([]grid.Coord, 0, s.LEDs), s.LEDs, s.Radius, s.StartAngle, fullSpan(s.StartAngle, s.EndAngle), w, h)
}

func (s Ring) place(w, h int) []grid.Coord {
	// Flat annulus: LEDs sit on the outer edge. InnerRadius is preview-only.
	return arcCells(make([]grid.Coord, 0, s.LEDs), s.LEDs, s.OuterRadius, s.StartAngle, fullSpan(s.StartAngle, s.EndAngle), w, h)
}

func (s Arc) place(w, h int) []grid.Coord {
	return arcCells(make([]grid.Coord, 0, s.LEDs), s.LEDs, s.Radius, s.StartAngle, s.EndAngle-s.StartAngle, w, h)
}

func (s MultiRing) place(w, h int) []grid.Coord {
	out := make([]grid.Coord, 0, s.LEDCount())
	// Ring-major: RingRadii array order is the LED order, never sorted.
	for r, n := range s.RingLEDs {
		out = arcCells(out, n, s.RingRadii[r], s.StartAngle, 360, w, h)
	}

	return out
}

func (s RadialRays) place(w, h int) []grid.Coord {
	cx, cy := grid.Center(w, h)
	spacing := s.SpacingAngle
	if spacing == 0 {
		spacing = 360 / float64(s.Rays)
	}

	out := make([]grid.Coord, 0, s.LEDCount())
	for k := 0; k < s.Rays; k++ {
		angle := float64(k) * spacing
		for j := 0; j < s.LEDsPerRay; j++ {
			// j=0 is innermost; a single-LED ray sits at InnerRadius.
			radius := s.InnerRadius
			if s.LEDsPerRay > 1 {
				radius += float64(j) * (s.OuterRadius - s.InnerRadius) / float64(s.LEDsPerRay-1)
			}
			out = append(out, polarCell(cx, cy, radius, angle, w, h))
		}
	}

	return out
}

func (s CustomPositions) place(w, h int) []grid.Coord {
	// cellsPerUnit converts one position unit into grid cells.
	pitch := s.Pitch
	if pitch == 0 {
		pitch = 1
	}
	cellsPerUnit := 1.0
	switch s.Unit {
	case UnitMillimeter:
		cellsPerUnit = 1 / pitch
	case UnitInch:
		cellsPerUnit = 25.4 / pitch
	}

	out := make([]grid.Coord, 0, len(s.Positions))
	for _, p := range s.Positions {
		out = append(out, grid.Snap(p.X*cellsPerUnit+s.Center.X, p.Y*cellsPerUnit+s.Center.Y, w, h))
	}

	return out
}
