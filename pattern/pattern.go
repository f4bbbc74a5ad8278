package pattern

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ledforge/ledgrid/grid"
	"github.com/ledforge/ledgrid/layout"
)

// Version is the pattern file format version this package writes.
const Version = 1

var (
	// ErrDecode indicates the input is not a valid pattern document.
	ErrDecode = errors.New("pattern: malformed pattern file")
	// ErrVersion indicates an unsupported format version.
	ErrVersion = errors.New("pattern: unsupported file version")
	// ErrUnknownKind indicates an unrecognized layout kind tag.
	ErrUnknownKind = errors.New("pattern: unknown layout kind")
	// ErrUnknownUnit indicates an unrecognized position unit tag.
	ErrUnknownUnit = errors.New("pattern: unknown position unit")
	// ErrNilArgument indicates a nil spec or table passed to Save.
	ErrNilArgument = errors.New("pattern: spec and table must not be nil")
)

// specJSON is the flat tagged wire form of a layout.Spec. Only the fields of
// the active kind are populated; omitempty keeps the document minimal.
type specJSON struct {
	Kind         string       `json:"kind"`
	LEDs         int          `json:"leds,omitempty"`
	Radius       float64      `json:"radius,omitempty"`
	InnerRadius  float64      `json:"inner_radius,omitempty"`
	OuterRadius  float64      `json:"outer_radius,omitempty"`
	StartAngle   float64      `json:"start_angle,omitempty"`
	EndAngle     float64      `json:"end_angle,omitempty"`
	RingLEDs     []int        `json:"ring_leds,omitempty"`
	RingRadii    []float64    `json:"ring_radii,omitempty"`
	Rays         int          `json:"rays,omitempty"`
	LEDsPerRay   int          `json:"leds_per_ray,omitempty"`
	SpacingAngle float64      `json:"spacing_angle,omitempty"`
	Positions    [][2]float64 `json:"positions,omitempty"`
	Unit         string       `json:"unit,omitempty"`
	Pitch        float64      `json:"pitch,omitempty"`
	Center       *[2]float64  `json:"center,omitempty"`
}

// fileJSON is the top-level pattern document.
type fileJSON struct {
	Version int      `json:"version"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Layout  specJSON `json:"layout"`
	Table   [][2]int `json:"table"`
}

// encodeSpec lowers a layout.Spec into its tagged wire form.
func encodeSpec(spec layout.Spec) specJSON {
	out := specJSON{Kind: spec.Kind().String()}
	switch s := spec.(type) {
	case layout.Circle:
		out.LEDs = s.LEDs
		out.Radius = s.Radius
		out.StartAngle = s.StartAngle
		out.EndAngle = s.EndAngle
	case layout.Ring:
		out.LEDs = s.LEDs
		out.InnerRadius = s.InnerRadius
		out.OuterRadius = s.OuterRadius
		out.StartAngle = s.StartAngle
		out.EndAngle = s.EndAngle
	case layout.Arc:
		out.LEDs = s.LEDs
		out.Radius = s.Radius
		out.StartAngle = s.StartAngle
		out.EndAngle = s.EndAngle
	case layout.MultiRing:
		out.RingLEDs = s.RingLEDs
		out.RingRadii = s.RingRadii
		out.StartAngle = s.StartAngle
	case layout.RadialRays:
		out.Rays = s.Rays
		out.LEDsPerRay = s.LEDsPerRay
		out.InnerRadius = s.InnerRadius
		out.OuterRadius = s.OuterRadius
		out.SpacingAngle = s.SpacingAngle
	case layout.CustomPositions:
		for _, p := range s.Positions {
			out.Positions = append(out.Positions, [2]float64{p.X, p.Y})
		}
		out.Unit = s.Unit.String()
		out.Pitch = s.Pitch
		if s.Center != (layout.Point{}) {
			out.Center = &[2]float64{s.Center.X, s.Center.Y}
		}
	}

	return out
}

// decodeUnit parses a unit tag written by layout.Unit.String. An absent tag
// means grid units.
func decodeUnit(tag string) (layout.Unit, error) {
	switch tag {
	case "", "grid":
		return layout.UnitGrid, nil
	case "mm":
		return layout.UnitMillimeter, nil
	case "inch":
		return layout.UnitInch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, tag)
	}
}

// decodeSpec raises the tagged wire form back into a layout.Spec.
func decodeSpec(in specJSON) (layout.Spec, error) {
	switch in.Kind {
	case "circle":
		return layout.Circle{LEDs: in.LEDs, Radius: in.Radius, StartAngle: in.StartAngle, EndAngle: in.EndAngle}, nil
	case "ring":
		return layout.Ring{LEDs: in.LEDs, InnerRadius: in.InnerRadius, OuterRadius: in.OuterRadius, StartAngle: in.StartAngle, EndAngle: in.EndAngle}, nil
	case "arc":
		return layout.Arc{LEDs: in.LEDs, Radius: in.Radius, StartAngle: in.StartAngle, EndAngle: in.EndAngle}, nil
	case "multi_ring":
		return layout.MultiRing{RingLEDs: in.RingLEDs, RingRadii: in.RingRadii, StartAngle: in.StartAngle}, nil
	case "radial_rays":
		return layout.RadialRays{Rays: in.Rays, LEDsPerRay: in.LEDsPerRay, InnerRadius: in.InnerRadius, OuterRadius: in.OuterRadius, SpacingAngle: in.SpacingAngle}, nil
	case "custom_positions":
		s := layout.CustomPositions{Pitch: in.Pitch}
		unit, err := decodeUnit(in.Unit)
		if err != nil {
			return nil, err
		}
		s.Unit = unit
		for _, p := range in.Positions {
			s.Positions = append(s.Positions, layout.Point{X: p[0], Y: p[1]})
		}
		if in.Center != nil {
			s.Center = layout.Point{X: in.Center[0], Y: in.Center[1]}
		}

		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
}

// Save writes spec and its mapping table as an indented JSON document.
// The table's own grid size is recorded, so Load can detect a later resize.
func Save(w io.Writer, spec layout.Spec, tbl *layout.Table) error {
	if spec == nil || tbl == nil {
		return ErrNilArgument
	}
	gw, gh := tbl.Size()
	doc := fileJSON{
		Version: Version,
		Width:   gw,
		Height:  gh,
		Layout:  encodeSpec(spec),
	}
	for _, c := range tbl.Coords() {
		doc.Table = append(doc.Table, [2]int{c.X, c.Y})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// Load reads a pattern document and returns its spec together with a table
// guaranteed fresh for (spec, width, height): the stored table is accepted
// only when layout.Ensure validates it, and regenerated otherwise.
func Load(r io.Reader) (layout.Spec, *layout.Table, error) {
	var doc fileJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc.Version != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}
	spec, err := decodeSpec(doc.Layout)
	if err != nil {
		return nil, nil, err
	}

	coords := make([]grid.Coord, 0, len(doc.Table))
	for _, xy := range doc.Table {
		coords = append(coords, grid.Coord{X: xy[0], Y: xy[1]})
	}
	stored := layout.NewTable(coords, doc.Width, doc.Height)

	tbl, err := layout.Ensure(stored, spec, doc.Width, doc.Height)
	if err != nil {
		return nil, nil, err
	}

	return spec, tbl, nil
}
