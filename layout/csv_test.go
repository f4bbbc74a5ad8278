package layout_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ledforge/ledgrid/layout"
)

// TestLoadPositionsCSV parses a typical hand-maintained board file: header,
// whitespace, extra label columns.
func TestLoadPositionsCSV(t *testing.T) {
	in := strings.Join([]string{
		"x;y;label",
		"0.0;0.0;first",
		" 12.5 ; 3.25 ;mid",
		"-4;7.75",
		"",
	}, "\n")

	points, err := layout.LoadPositionsCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadPositionsCSV error: %v", err)
	}
	want := []layout.Point{{X: 0, Y: 0}, {X: 12.5, Y: 3.25}, {X: -4, Y: 7.75}}
	if len(points) != len(want) {
		t.Fatalf("got %d points; want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d = %v; want %v", i, points[i], want[i])
		}
	}
}

// TestLoadPositionsCSV_Malformed verifies every malformed input fails with
// ErrPositionsCSV instead of being silently skipped.
func TestLoadPositionsCSV_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"HeaderOnly", "x;y\n"},
		{"MissingColumn", "x;y\n3.5\n"},
		{"BadX", "x;y\noops;2\n"},
		{"BadY", "x;y\n1;oops\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.LoadPositionsCSV(strings.NewReader(tc.in))
			if !errors.Is(err, layout.ErrPositionsCSV) {
				t.Errorf("error = %v; want ErrPositionsCSV", err)
			}
		})
	}
}

// TestLoadPositionsCSV_FeedsCustomLayout wires a parsed file into a
// CustomPositions spec end to end.
func TestLoadPositionsCSV_FeedsCustomLayout(t *testing.T) {
	in := "x_mm;y_mm\n0;0\n10;0\n10;10\n0;10\n"
	points, err := layout.LoadPositionsCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadPositionsCSV error: %v", err)
	}

	spec := layout.CustomPositions{Positions: points, Unit: layout.UnitMillimeter, Pitch: 5}
	tbl, err := layout.Generate(spec, 5, 5)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if tbl.Len() != 4 {
		t.Fatalf("Len = %d; want 4", tbl.Len())
	}
	// 10 mm at 5 mm/cell lands two cells out: a 2×2 square from the origin.
	c, _ := tbl.At(2)
	if c.X != 2 || c.Y != 2 {
		t.Errorf("LED 2 at %v; want (2,2)", c)
	}
}
