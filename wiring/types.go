package wiring

// Mode selects the traversal pattern of the physical wiring path.
type Mode int

const (
	// RowMajor wires every row in the same horizontal direction.
	RowMajor Mode = iota
	// Serpentine wires rows in alternating horizontal directions (zigzag).
	Serpentine
	// ColumnMajor wires every column in the same vertical direction.
	ColumnMajor
	// ColumnSerpentine wires columns in alternating vertical directions.
	ColumnSerpentine
)

// String returns the stable textual tag of the mode.
func (m Mode) String() string {
	switch m {
	case RowMajor:
		return "row_major"
	case Serpentine:
		return "serpentine"
	case ColumnMajor:
		return "column_major"
	case ColumnSerpentine:
		return "column_serpentine"
	default:
		return "unknown"
	}
}

// Corner names the grid corner where the wiring path begins.
type Corner int

const (
	// TopLeft starts at design cell (0,0).
	TopLeft Corner = iota
	// TopRight starts at design cell (W−1,0).
	TopRight
	// BottomLeft starts at design cell (0,H−1).
	BottomLeft
	// BottomRight starts at design cell (W−1,H−1).
	BottomRight
)

// String returns the stable textual tag of the corner.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top_left"
	case TopRight:
		return "top_right"
	case BottomLeft:
		return "bottom_left"
	case BottomRight:
		return "bottom_right"
	default:
		return "unknown"
	}
}

// Spec describes one physical wiring path over a Width×Height rectangle.
// It is configuration, not pattern state: set it per export or preview
// target. Spec is comparable, so it serves directly as a memoization key.
type Spec struct {
	Width, Height int
	Mode          Mode
	Corner        Corner
	FlipX, FlipY  bool
}

// validate checks the closed enumerations and grid dimensions.
func (s Spec) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrBadGrid
	}
	switch s.Mode {
	case RowMajor, Serpentine, ColumnMajor, ColumnSerpentine:
	default:
		return ErrUnknownMode
	}
	switch s.Corner {
	case TopLeft, TopRight, BottomLeft, BottomRight:
	default:
		return ErrUnknownCorner
	}

	return nil
}
