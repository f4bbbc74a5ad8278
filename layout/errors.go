package layout

import (
	"errors"
	"fmt"
)

// ErrConfig is the class sentinel for every invalid-LayoutSpec condition.
// All specific configuration sentinels below wrap it, so
// errors.Is(err, ErrConfig) matches any of them.
var ErrConfig = errors.New("layout: invalid layout configuration")

var (
	// ErrNilSpec indicates a nil Spec was passed where one is required.
	ErrNilSpec = fmt.Errorf("%w: spec must not be nil", ErrConfig)
	// ErrGridSize indicates non-positive grid dimensions.
	ErrGridSize = fmt.Errorf("%w: grid dimensions must be positive", ErrConfig)
	// ErrLEDCount indicates a non-positive LED or per-ray count.
	ErrLEDCount = fmt.Errorf("%w: led count must be positive", ErrConfig)
	// ErrRayCount indicates a non-positive ray count.
	ErrRayCount = fmt.Errorf("%w: ray count must be positive", ErrConfig)
	// ErrRadius indicates a negative, non-finite, or inverted radius.
	ErrRadius = fmt.Errorf("%w: radius out of range", ErrConfig)
	// ErrAngleRange indicates a non-finite or degenerate angle range.
	ErrAngleRange = fmt.Errorf("%w: angle range invalid", ErrConfig)
	// ErrRingMismatch indicates len(RingLEDs) ≠ len(RingRadii) or zero rings.
	ErrRingMismatch = fmt.Errorf("%w: ring counts and radii must align", ErrConfig)
	// ErrNoPositions indicates an empty custom position list.
	ErrNoPositions = fmt.Errorf("%w: custom position list must not be empty", ErrConfig)
	// ErrPosition indicates a non-finite custom position or center offset.
	ErrPosition = fmt.Errorf("%w: position must be finite", ErrConfig)
	// ErrUnit indicates an unknown measurement unit.
	ErrUnit = fmt.Errorf("%w: unknown unit", ErrConfig)
	// ErrPitch indicates a negative or non-finite grid pitch.
	ErrPitch = fmt.Errorf("%w: pitch must be positive", ErrConfig)
)

// Validation sentinels: a stored table disagreeing with its spec or grid.
// These trigger regeneration via Ensure; they are never silently tolerated.
var (
	// ErrNilTable indicates a nil Table was passed where one is required.
	ErrNilTable = errors.New("layout: table must not be nil")
	// ErrTableLength indicates table length ≠ the LED count implied by its spec.
	ErrTableLength = errors.New("layout: table length disagrees with spec")
	// ErrTableBounds indicates a table entry outside [0,W)×[0,H).
	ErrTableBounds = errors.New("layout: table entry outside grid bounds")
	// ErrTableCollision indicates duplicate cells in a strict-uniqueness layout.
	ErrTableCollision = errors.New("layout: duplicate cells in custom-position table")
	// ErrGridMismatch indicates the table was generated for a different grid size.
	ErrGridMismatch = errors.New("layout: table generated for a different grid size")
)

// ErrIndexOutOfRange is returned by Table.At for an LED index ≥ Len.
var ErrIndexOutOfRange = errors.New("layout: led index out of range")

// ErrPositionsCSV is returned by LoadPositionsCSV for malformed input.
var ErrPositionsCSV = errors.New("layout: malformed positions csv")
