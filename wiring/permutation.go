package wiring

import "github.com/ledforge/ledgrid/grid"

// Permutation is the bijection between hardware LED index and row-major
// design index for one wiring Spec. Position hw in the forward table holds
// the design index whose pixel the hardware expects at LED hw. The inverse
// is precomputed once at build time. Immutable once built.
type Permutation struct {
	spec Spec
	fwd  []int // hardware index → design index
	inv  []int // design index → hardware index
}

// Build constructs the permutation for spec. It is a deterministic pure
// function of the Spec value and fails only on non-positive dimensions or an
// enum value outside its closed set.
//
// Complexity: O(W·H) time and memory.
func Build(spec Spec) (*Permutation, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	w, h := spec.Width, spec.Height

	// Corner-implied origin and step along each axis.
	xStart, xStep := 0, 1
	if spec.Corner == TopRight || spec.Corner == BottomRight {
		xStart, xStep = w-1, -1
	}
	yStart, yStep := 0, 1
	if spec.Corner == BottomLeft || spec.Corner == BottomRight {
		yStart, yStep = h-1, -1
	}

	fwd := make([]int, 0, w*h)
	emit := func(x, y int) {
		// Flips reflect after traversal; they compose with mode and corner.
		if spec.FlipX {
			x = w - 1 - x
		}
		if spec.FlipY {
			y = h - 1 - y
		}
		fwd = append(fwd, grid.Index(x, y, w))
	}

	switch spec.Mode {
	case RowMajor, Serpentine:
		for r := 0; r < h; r++ {
			y := yStart + r*yStep
			for c := 0; c < w; c++ {
				cc := c
				if spec.Mode == Serpentine && r%2 == 1 {
					cc = w - 1 - c // every other row runs backwards
				}
				emit(xStart+cc*xStep, y)
			}
		}
	case ColumnMajor, ColumnSerpentine:
		for c := 0; c < w; c++ {
			x := xStart + c*xStep
			for r := 0; r < h; r++ {
				rr := r
				if spec.Mode == ColumnSerpentine && c%2 == 1 {
					rr = h - 1 - r // every other column runs backwards
				}
				emit(x, yStart+rr*yStep)
			}
		}
	}

	inv := make([]int, len(fwd))
	for hw, design := range fwd {
		inv[design] = hw
	}

	return &Permutation{spec: spec, fwd: fwd, inv: inv}, nil
}

// Spec returns the wiring spec the permutation was built from.
func (p *Permutation) Spec() Spec { return p.spec }

// Len reports the pixel count, Width·Height.
func (p *Permutation) Len() int { return len(p.fwd) }

// DesignIndex returns the design index wired to hardware LED hw, and false
// when hw is outside [0, Len).
func (p *Permutation) DesignIndex(hw int) (int, bool) {
	if hw < 0 || hw >= len(p.fwd) {
		return 0, false
	}

	return p.fwd[hw], true
}

// Forward returns a copy of the hardware→design index table, for firmware
// encoders that permute raw byte triples themselves.
func (p *Permutation) Forward() []int {
	cp := make([]int, len(p.fwd))
	copy(cp, p.fwd)

	return cp
}

// Inverse returns a copy of the design→hardware index table.
func (p *Permutation) Inverse() []int {
	cp := make([]int, len(p.inv))
	copy(cp, p.inv)

	return cp
}
