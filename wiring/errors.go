package wiring

import "errors"

var (
	// ErrBadGrid indicates non-positive grid dimensions in a Spec.
	ErrBadGrid = errors.New("wiring: grid dimensions must be positive")
	// ErrUnknownMode indicates a Mode outside the closed enumeration.
	ErrUnknownMode = errors.New("wiring: unknown wiring mode")
	// ErrUnknownCorner indicates a Corner outside the closed enumeration.
	ErrUnknownCorner = errors.New("wiring: unknown start corner")
	// ErrSizeMismatch indicates a pixel buffer whose length ≠ W·H.
	ErrSizeMismatch = errors.New("wiring: pixel buffer length must equal width*height")
)
