package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/ledforge/ledgrid/grid"
	"github.com/ledforge/ledgrid/layout"
	"github.com/ledforge/ledgrid/wiring"
)

var (
	// ErrNilTable indicates a nil mapping table passed to Preview.
	ErrNilTable = errors.New("render: table must not be nil")
	// ErrNilPermutation indicates a nil permutation passed to WiringPreview.
	ErrNilPermutation = errors.New("render: permutation must not be nil")
)

// Options tunes the preview rasterization.
type Options struct {
	// CellSize is the edge length of one grid cell in pixels.
	CellSize int
	// ShowPath draws the LED-order (or wire-order) polyline.
	ShowPath bool
	// ShowIndices labels each LED cell with its index.
	ShowIndices bool
}

// DefaultOptions returns the preview defaults: 24 px cells, path shown,
// index labels off.
func DefaultOptions() Options {
	return Options{CellSize: 24, ShowPath: true}
}

var (
	colBackground = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff}
	colUnmapped   = color.RGBA{R: 0x22, G: 0x22, B: 0x28, A: 0xff}
	colMapped     = color.RGBA{R: 0xe8, G: 0xb8, B: 0x2a, A: 0xff}
	colGridLine   = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}
	colPath       = color.RGBA{R: 0x4a, G: 0x9e, B: 0xd4, A: 0xff}
	colLabel      = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	colStart      = color.RGBA{R: 0x56, G: 0xc2, B: 0x6a, A: 0xff}
)

// monoFace builds a monospace label face sized to the cell.
func monoFace(cellSize int) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse label font: %w", err)
	}

	return truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(cellSize) * 0.38,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// newGridContext draws the cell backgrounds and grid lines shared by both
// preview kinds. mapped reports whether a cell should be lit.
func newGridContext(w, h, cellSize int, mapped func(x, y int) bool) *gg.Context {
	cs := float64(cellSize)
	dc := gg.NewContext(w*cellSize, h*cellSize)
	dc.SetColor(colBackground)
	dc.Clear()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mapped(x, y) {
				dc.SetColor(colMapped)
			} else {
				dc.SetColor(colUnmapped)
			}
			dc.DrawRectangle(float64(x)*cs+1, float64(y)*cs+1, cs-2, cs-2)
			dc.Fill()
		}
	}

	dc.SetColor(colGridLine)
	dc.SetLineWidth(1)
	for x := 0; x <= w; x++ {
		dc.DrawLine(float64(x)*cs, 0, float64(x)*cs, float64(h)*cs)
	}
	for y := 0; y <= h; y++ {
		dc.DrawLine(0, float64(y)*cs, float64(w)*cs, float64(y)*cs)
	}
	dc.Stroke()

	return dc
}

// cellCenter converts a cell to its pixel center.
func cellCenter(c grid.Coord, cellSize int) (float64, float64) {
	cs := float64(cellSize)

	return (float64(c.X) + 0.5) * cs, (float64(c.Y) + 0.5) * cs
}

// drawPath strokes a polyline through the given cells and finishes with an
// arrowhead on the last segment.
func drawPath(dc *gg.Context, cells []grid.Coord, cellSize int) {
	if len(cells) < 2 {
		return
	}
	dc.SetColor(colPath)
	dc.SetLineWidth(2)
	for i := 1; i < len(cells); i++ {
		x0, y0 := cellCenter(cells[i-1], cellSize)
		x1, y1 := cellCenter(cells[i], cellSize)
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	// Arrowhead: two short strokes back from the final point.
	x0, y0 := cellCenter(cells[len(cells)-2], cellSize)
	x1, y1 := cellCenter(cells[len(cells)-1], cellSize)
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	scale := float64(cellSize) * 0.3 / length
	ux, uy := dx*scale, dy*scale
	dc.DrawLine(x1, y1, x1-ux-uy*0.6, y1-uy+ux*0.6)
	dc.DrawLine(x1, y1, x1-ux+uy*0.6, y1-uy-ux*0.6)
	dc.Stroke()
}

// Preview renders a mapping table on its design grid: unmapped cells dimmed,
// LED cells lit, plus the optional LED-order polyline and index labels.
func Preview(tbl *layout.Table, opts Options) (image.Image, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultOptions().CellSize
	}
	w, h := tbl.Size()
	dc := newGridContext(w, h, opts.CellSize, tbl.IsMapped)

	cells := tbl.Coords()
	if opts.ShowPath {
		drawPath(dc, cells, opts.CellSize)
	}
	if opts.ShowIndices {
		face, err := monoFace(opts.CellSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(colLabel)
		for i, c := range cells {
			x, y := cellCenter(c, opts.CellSize)
			dc.DrawStringAnchored(strconv.Itoa(i), x, y, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}

// WiringPreview renders the wiring path of a permutation across its design
// grid in hardware order, with the start cell marked.
func WiringPreview(p *wiring.Permutation, opts Options) (image.Image, error) {
	if p == nil {
		return nil, ErrNilPermutation
	}
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultOptions().CellSize
	}
	w := p.Spec().Width
	h := p.Spec().Height

	// Every cell is wired exactly once, so none are dimmed.
	dc := newGridContext(w, h, opts.CellSize, func(int, int) bool { return false })

	cells := make([]grid.Coord, 0, p.Len())
	for hw := 0; hw < p.Len(); hw++ {
		design, _ := p.DesignIndex(hw)
		cells = append(cells, grid.CoordOf(design, w))
	}
	if opts.ShowPath {
		drawPath(dc, cells, opts.CellSize)
	}

	// Start marker: hardware LED 0.
	x, y := cellCenter(cells[0], opts.CellSize)
	dc.SetColor(colStart)
	dc.DrawCircle(x, y, float64(opts.CellSize)*0.28)
	dc.Fill()

	if opts.ShowIndices {
		face, err := monoFace(opts.CellSize)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(colPath)
		for hw, c := range cells {
			px, py := cellCenter(c, opts.CellSize)
			dc.DrawStringAnchored(strconv.Itoa(hw), px, py, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
