package layout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadPositionsCSV reads an ordered per-LED position list for a
// CustomPositions layout from semicolon-separated CSV: one header row, then
// one "x;y" record per LED in LED order. Extra columns are ignored, so files
// exported with labels or channel data still load. Whitespace around values
// is tolerated.
//
// The record order is the LED order; nothing is sorted.
func LoadPositionsCSV(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	// Header row is mandatory; an empty file is malformed, not "no LEDs".
	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrPositionsCSV, err)
	}

	var points []Point
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrPositionsCSV, line, err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: line %d: want at least x;y", ErrPositionsCSV, line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad x %q", ErrPositionsCSV, line, rec[0])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad y %q", ErrPositionsCSV, line, rec[1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no position records", ErrPositionsCSV)
	}

	return points, nil
}
