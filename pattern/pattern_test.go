package pattern_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledforge/ledgrid/layout"
	"github.com/ledforge/ledgrid/pattern"
)

// TestSaveLoad_RoundTrip verifies every layout kind survives a save/load
// cycle with spec and table intact.
func TestSaveLoad_RoundTrip(t *testing.T) {
	specs := []layout.Spec{
		layout.Circle{LEDs: 12, Radius: 4, StartAngle: 15},
		layout.Ring{LEDs: 16, InnerRadius: 2, OuterRadius: 4.5},
		layout.Arc{LEDs: 7, Radius: 4, StartAngle: 0, EndAngle: 180},
		layout.MultiRing{RingLEDs: []int{4, 8}, RingRadii: []float64{2, 4}, StartAngle: 45},
		layout.RadialRays{Rays: 4, LEDsPerRay: 3, InnerRadius: 1, OuterRadius: 5},
		layout.CustomPositions{
			Positions: []layout.Point{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 5, Y: 9}},
			Unit:      layout.UnitGrid,
		},
	}
	for _, spec := range specs {
		t.Run(spec.Kind().String(), func(t *testing.T) {
			tbl, err := layout.Generate(spec, 11, 11)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, pattern.Save(&buf, spec, tbl))

			gotSpec, gotTbl, err := pattern.Load(&buf)
			require.NoError(t, err)
			require.Equal(t, spec, gotSpec)
			require.Equal(t, tbl.Coords(), gotTbl.Coords())
		})
	}
}

// TestLoad_RegeneratesStaleTable verifies a stored table that no longer
// matches its spec is rebuilt on load instead of trusted.
func TestLoad_RegeneratesStaleTable(t *testing.T) {
	// The table claims 2 LEDs but the spec implies 4: a stale save.
	doc := `{
	  "version": 1,
	  "width": 5,
	  "height": 5,
	  "layout": {"kind": "circle", "leds": 4, "radius": 2},
	  "table": [[4,2],[2,4]]
	}`

	spec, tbl, err := pattern.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, layout.Circle{LEDs: 4, Radius: 2}, spec)
	require.Equal(t, 4, tbl.Len(), "stale table must be regenerated from the spec")

	expected, err := layout.Generate(spec, 5, 5)
	require.NoError(t, err)
	require.Equal(t, expected.Coords(), tbl.Coords())
}

// TestLoad_Errors verifies each malformed document surfaces its sentinel.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"NotJSON", "not json at all", pattern.ErrDecode},
		{"BadVersion", `{"version": 99, "width": 5, "height": 5, "layout": {"kind": "circle", "leds": 4, "radius": 2}}`, pattern.ErrVersion},
		{"UnknownKind", `{"version": 1, "width": 5, "height": 5, "layout": {"kind": "moebius", "leds": 4}}`, pattern.ErrUnknownKind},
		{"UnknownUnit", `{"version": 1, "width": 5, "height": 5, "layout": {"kind": "custom_positions", "positions": [[1,1]], "unit": "furlong"}}`, pattern.ErrUnknownUnit},
		{"BadSpec", `{"version": 1, "width": 5, "height": 5, "layout": {"kind": "circle", "leds": 0, "radius": 2}}`, layout.ErrConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := pattern.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestSave_NilArguments verifies Save rejects missing inputs.
func TestSave_NilArguments(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, pattern.Save(&buf, nil, nil), pattern.ErrNilArgument)
}

// TestSave_DocumentShape verifies the written JSON carries the tagged
// layout, grid size, and coordinate-pair table.
func TestSave_DocumentShape(t *testing.T) {
	spec := layout.Circle{LEDs: 4, Radius: 2}
	tbl, err := layout.Generate(spec, 5, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pattern.Save(&buf, spec, tbl))
	doc := buf.String()
	require.Contains(t, doc, `"kind": "circle"`)
	require.Contains(t, doc, `"width": 5`)
	require.Contains(t, doc, `"table"`)
	require.Contains(t, doc, `[`)
}
