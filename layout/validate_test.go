package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledforge/ledgrid/grid"
	"github.com/ledforge/ledgrid/layout"
)

// TestValidate_AcceptsFreshTable verifies a freshly generated table passes
// with no warnings.
func TestValidate_AcceptsFreshTable(t *testing.T) {
	spec := layout.Circle{LEDs: 12, Radius: 4}
	tbl, err := layout.Generate(spec, 11, 11)
	require.NoError(t, err)

	warnings, err := layout.Validate(tbl, spec, 11, 11)
	require.NoError(t, err)
	require.Empty(t, warnings)
}

// TestValidate_CollisionWarnings verifies colliding polar layouts stay
// publishable and report each duplicate pair.
func TestValidate_CollisionWarnings(t *testing.T) {
	// Radius 0 collapses all three LEDs onto the center cell.
	spec := layout.Circle{LEDs: 3, Radius: 0}
	tbl, err := layout.Generate(spec, 5, 5)
	require.NoError(t, err)

	warnings, err := layout.Validate(tbl, spec, 5, 5)
	require.NoError(t, err, "collisions must be non-fatal for polar layouts")
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		require.Equal(t, grid.Coord{X: 2, Y: 2}, w.Cell)
		require.Equal(t, 0, w.First)
	}
	require.Equal(t, 1, warnings[0].Dup)
	require.Equal(t, 2, warnings[1].Dup)
}

// TestValidate_CustomCollisionsFatal verifies strict uniqueness for
// custom-position layouts: duplicates are an error, not a warning.
func TestValidate_CustomCollisionsFatal(t *testing.T) {
	spec := layout.CustomPositions{Positions: []layout.Point{{X: 1, Y: 1}, {X: 1.2, Y: 0.8}}}
	tbl, err := layout.Generate(spec, 5, 5)
	require.NoError(t, err, "generation itself never rejects collisions")

	warnings, err := layout.Validate(tbl, spec, 5, 5)
	require.ErrorIs(t, err, layout.ErrTableCollision)
	require.Len(t, warnings, 1, "the collisions are still reported alongside the error")
}

// TestValidate_StaleTables verifies each staleness condition surfaces its
// own sentinel so Ensure knows to regenerate.
func TestValidate_StaleTables(t *testing.T) {
	spec := layout.Circle{LEDs: 4, Radius: 2}
	tbl, err := layout.Generate(spec, 5, 5)
	require.NoError(t, err)

	t.Run("GridResized", func(t *testing.T) {
		_, err := layout.Validate(tbl, spec, 7, 7)
		require.ErrorIs(t, err, layout.ErrGridMismatch)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		truncated := layout.NewTable(tbl.Coords()[:3], 5, 5)
		_, err := layout.Validate(truncated, spec, 5, 5)
		require.ErrorIs(t, err, layout.ErrTableLength)
	})

	t.Run("OutOfBoundsEntry", func(t *testing.T) {
		coords := tbl.Coords()
		coords[2] = grid.Coord{X: 9, Y: 0}
		corrupt := layout.NewTable(coords, 5, 5)
		_, err := layout.Validate(corrupt, spec, 5, 5)
		require.ErrorIs(t, err, layout.ErrTableBounds)
	})

	t.Run("NilTable", func(t *testing.T) {
		_, err := layout.Validate(nil, spec, 5, 5)
		require.ErrorIs(t, err, layout.ErrNilTable)
	})

	t.Run("InvalidSpec", func(t *testing.T) {
		_, err := layout.Validate(tbl, layout.Circle{LEDs: 0}, 5, 5)
		require.ErrorIs(t, err, layout.ErrConfig)
	})
}
