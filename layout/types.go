package layout

import (
	"github.com/ledforge/ledgrid/grid"
)

// Kind discriminates the layout topology of a Spec.
type Kind int

const (
	// KindCircle places LEDs evenly on a single circle.
	KindCircle Kind = iota
	// KindRing places LEDs on the outer edge of a flat annulus.
	KindRing
	// KindArc places LEDs along a partial circle.
	KindArc
	// KindMultiRing places concentric rings of LEDs, ring-major.
	KindMultiRing
	// KindRadialRays places straight spokes of LEDs, ray-major.
	KindRadialRays
	// KindCustomPositions places LEDs at caller-supplied coordinates.
	KindCustomPositions
)

// String returns the stable textual tag of the kind, as used in pattern files.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRing:
		return "ring"
	case KindArc:
		return "arc"
	case KindMultiRing:
		return "multi_ring"
	case KindRadialRays:
		return "radial_rays"
	case KindCustomPositions:
		return "custom_positions"
	default:
		return "unknown"
	}
}

// Unit is the measurement unit of custom LED positions.
type Unit int

const (
	// UnitGrid means positions are already grid cells.
	UnitGrid Unit = iota
	// UnitMillimeter means positions are millimeters, converted via Pitch.
	UnitMillimeter
	// UnitInch means positions are inches (25.4 mm), converted via Pitch.
	UnitInch
)

// String returns the stable textual tag of the unit.
func (u Unit) String() string {
	switch u {
	case UnitGrid:
		return "grid"
	case UnitMillimeter:
		return "mm"
	case UnitInch:
		return "inch"
	default:
		return "unknown"
	}
}

// Point is a continuous 2D position, in the units of its containing spec.
type Point struct {
	X, Y float64
}

// Spec describes one LED topology. It is a sealed sum type: exactly the six
// concrete variants in this package implement it, so a type switch over Spec
// can be exhaustive. All variants are plain value types safe to copy.
type Spec interface {
	// Kind reports the topology discriminator.
	Kind() Kind
	// LEDCount reports the total number of LEDs the spec implies.
	LEDCount() int
	// Validate checks the parameters against the spec's kind; every failure
	// wraps ErrConfig.
	Validate() error

	// place produces the LED-index-ordered cells for a validated spec.
	// Unexported: seals the interface and keeps Generate the only entry point.
	place(w, h int) []grid.Coord
}

// Circle places LEDs evenly spaced on a circle of Radius cells around the
// grid center. LED i sits at StartAngle + i·span/LEDs degrees, where span is
// EndAngle−StartAngle, or a full 360° when the two angles are equal.
type Circle struct {
	LEDs       int
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Kind reports KindCircle.
func (Circle) Kind() Kind { return KindCircle }

// LEDCount reports the configured LED count.
func (s Circle) LEDCount() int { return s.LEDs }

// Ring places LEDs on a flat annulus. The LEDs sit at OuterRadius; the inner
// radius does not move LEDs but is validated (0 ≤ inner < outer) and kept
// for editor hit-testing and preview.
type Ring struct {
	LEDs        int
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
}

// Kind reports KindRing.
func (Ring) Kind() Kind { return KindRing }

// LEDCount reports the configured LED count.
func (s Ring) LEDCount() int { return s.LEDs }

// Arc places LEDs along a partial circle from StartAngle towards EndAngle.
// Unlike Circle, the angle range must be non-degenerate. The step is the
// same i·span/LEDs rule as Circle, so an arc never duplicates its first LED
// at the far end.
type Arc struct {
	LEDs       int
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Kind reports KindArc.
func (Arc) Kind() Kind { return KindArc }

// LEDCount reports the configured LED count.
func (s Arc) LEDCount() int { return s.LEDs }

// MultiRing places concentric full rings of LEDs, ring-major: all LEDs of
// RingRadii[0] precede all LEDs of RingRadii[1], and so on. Radii are
// trusted in array order and never reordered by magnitude — a caller who
// wants LED index 0 on the outermost ring simply lists that radius first.
// Each ring spreads its RingLEDs[r] LEDs over a full revolution starting at
// StartAngle.
type MultiRing struct {
	RingLEDs   []int
	RingRadii  []float64
	StartAngle float64
}

// Kind reports KindMultiRing.
func (MultiRing) Kind() Kind { return KindMultiRing }

// LEDCount reports the sum of all per-ring LED counts.
func (s MultiRing) LEDCount() int {
	total := 0
	for _, n := range s.RingLEDs {
		total += n
	}

	return total
}

// RadialRays places straight spokes of LEDs, ray-major. Ray k sits at angle
// k·SpacingAngle (SpacingAngle 0 means evenly spaced, 360/Rays). Within a
// ray, LED 0 is innermost: LED j sits at
// InnerRadius + j·(OuterRadius−InnerRadius)/(LEDsPerRay−1), and a
// single-LED ray sits at InnerRadius.
type RadialRays struct {
	Rays         int
	LEDsPerRay   int
	InnerRadius  float64
	OuterRadius  float64
	SpacingAngle float64
}

// Kind reports KindRadialRays.
func (RadialRays) Kind() Kind { return KindRadialRays }

// LEDCount reports Rays × LEDsPerRay.
func (s RadialRays) LEDCount() int { return s.Rays * s.LEDsPerRay }

// CustomPositions places LEDs at an ordered, caller-supplied list of
// positions: LED ordering is exactly list order. Positions are given in
// Unit; millimeters and inches convert to cells through Pitch (millimeters
// per grid cell, default 1 when zero). Center is a grid-cell offset added
// after unit conversion. Rounding and clamping match the polar layouts.
type CustomPositions struct {
	Positions []Point
	Unit      Unit
	Pitch     float64
	Center    Point
}

// Kind reports KindCustomPositions.
func (CustomPositions) Kind() Kind { return KindCustomPositions }

// LEDCount reports the length of the position list.
func (s CustomPositions) LEDCount() int { return len(s.Positions) }
