package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cellview/internal/core"
)

// DefaultCellSize is the fill edge of a cell in pixels.
const DefaultCellSize = 5

// Geometry fixes the pixel layout of the grid.
type Geometry struct {
	CellSize int
}

// DefaultGeometry returns 5px cells with 1px gridlines.
func DefaultGeometry() Geometry { return Geometry{CellSize: DefaultCellSize} }

// StrokeInset is the per-cell stride: the fill plus one gridline pixel.
func (g Geometry) StrokeInset() int { return g.CellSize + 1 }

// SurfaceSize returns the pixel size needed to draw a grid of the given size.
func (g Geometry) SurfaceSize(s core.Size) (w, h int) {
	cs := g.StrokeInset()
	return s.W*cs + 1, s.H*cs + 1
}

// CellOrigin returns the top-left pixel of the fill region of (row, col).
func (g Geometry) CellOrigin(row, col int) (x, y int) {
	cs := g.StrokeInset()
	return col*cs + 1, row*cs + 1
}

// Palette holds the three fixed colors used by the renderer.
type Palette struct {
	Grid  color.Color
	Dead  color.Color
	Alive color.Color
}

// DefaultPalette is light gray lines, white dead cells and black live cells.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
		Dead:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	}
}

// Fill returns the fill color for a decoded cell.
func (p Palette) Fill(c core.Cell) color.Color {
	if c == core.Dead {
		return p.Dead
	}
	return p.Alive
}

// ErrBadColor is returned by ParseHexColor for malformed input.
var ErrBadColor = errors.New("color must be #RRGGBB")

// ParseHexColor parses "#RRGGBB" (the leading # is optional) into an opaque
// RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
