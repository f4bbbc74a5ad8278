package layout

import (
	"github.com/ledforge/ledgrid/grid"
)

// Table is an immutable LED-index-ordered list of grid cells: entry i is the
// design-grid cell LED i lights up. A Table remembers the grid size it was
// generated for, so staleness after a grid resize is detectable.
type Table struct {
	coords        []grid.Coord
	width, height int
	lookup        map[grid.Coord]int // first LED index mapped to each cell
}

// NewTable wraps an already-ordered coordinate list, copying it. It exists
// for deserialization (pattern files); loaders must not trust the result
// blindly — pass it through Ensure to detect stale or corrupt data.
func NewTable(coords []grid.Coord, w, h int) *Table {
	cp := make([]grid.Coord, len(coords))
	copy(cp, coords)

	return newTable(cp, w, h)
}

// newTable takes ownership of coords and builds the cell lookup.
func newTable(coords []grid.Coord, w, h int) *Table {
	lookup := make(map[grid.Coord]int, len(coords))
	for i, c := range coords {
		if _, seen := lookup[c]; !seen {
			lookup[c] = i
		}
	}

	return &Table{coords: coords, width: w, height: h, lookup: lookup}
}

// Len reports the number of LEDs in the table.
func (t *Table) Len() int { return len(t.coords) }

// Size reports the grid dimensions the table was generated for.
func (t *Table) Size() (w, h int) { return t.width, t.height }

// At returns the grid cell of LED i, or ErrIndexOutOfRange for i outside
// [0, Len). Complexity: O(1).
func (t *Table) At(i int) (grid.Coord, error) {
	if i < 0 || i >= len(t.coords) {
		return grid.Coord{}, ErrIndexOutOfRange
	}

	return t.coords[i], nil
}

// LEDAt returns the first LED index mapped to cell (x,y), and whether any
// LED maps there at all. Complexity: O(1).
func (t *Table) LEDAt(x, y int) (int, bool) {
	i, ok := t.lookup[grid.Coord{X: x, Y: y}]

	return i, ok
}

// IsMapped reports whether some LED index maps to (x,y). Editor overlays use
// this to dim cells no LED can display. Complexity: O(1).
func (t *Table) IsMapped(x, y int) bool {
	_, ok := t.lookup[grid.Coord{X: x, Y: y}]

	return ok
}

// Coords returns a copy of the LED-index-ordered cell list, for serializers.
// The table itself stays immutable.
func (t *Table) Coords() []grid.Coord {
	cp := make([]grid.Coord, len(t.coords))
	copy(cp, t.coords)

	return cp
}
