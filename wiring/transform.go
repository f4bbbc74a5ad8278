package wiring

import "image/color"

// DesignToHardware reorders a row-major design buffer into hardware wire
// order: out[hw] = pixels[fwd[hw]]. The input must hold exactly Width·Height
// pixels or ErrSizeMismatch is returned.
//
// The call treats pixels as immutable and writes only its freshly allocated
// result, so it is safe from any goroutine; callers mutating the source
// concurrently must hand in their own snapshot.
//
// Complexity: O(W·H).
func (p *Permutation) DesignToHardware(pixels []color.RGBA) ([]color.RGBA, error) {
	if len(pixels) != len(p.fwd) {
		return nil, ErrSizeMismatch
	}
	out := make([]color.RGBA, len(pixels))
	for hw, design := range p.fwd {
		out[hw] = pixels[design]
	}

	return out, nil
}

// HardwareToDesign applies the inverse reordering, converting a
// hardware-order buffer (for example a source file captured in wire order)
// back into row-major design order: out[design] = pixels[inv→hw]. Same size
// and immutability contract as DesignToHardware.
//
// Complexity: O(W·H).
func (p *Permutation) HardwareToDesign(pixels []color.RGBA) ([]color.RGBA, error) {
	if len(pixels) != len(p.inv) {
		return nil, ErrSizeMismatch
	}
	out := make([]color.RGBA, len(pixels))
	for design, hw := range p.inv {
		out[design] = pixels[hw]
	}

	return out, nil
}
