package render

import (
	"image"
	"image/color"

	"cellview/internal/core"
)

// Surface is a 2D drawing target in pixel coordinates.
type Surface interface {
	Bounds() image.Rectangle
	// StrokeLine draws a 1px axis-aligned segment; both endpoints are
	// inclusive.
	StrokeLine(x0, y0, x1, y1 int, c color.Color)
	FillRect(x, y, w, h int, c color.Color)
}

// CellAccessor reads decoded cell states. core.CellView satisfies it.
type CellAccessor interface {
	At(row, col int) core.Cell
}

// Renderer draws a grid and its cells onto a Surface.
type Renderer struct {
	Geometry Geometry
	Palette  Palette
}

// NewRenderer returns a renderer with the default geometry and palette.
func NewRenderer() *Renderer {
	return &Renderer{Geometry: DefaultGeometry(), Palette: DefaultPalette()}
}

// Render redraws the whole grid. Every pixel of a surface sized by
// Geometry.SurfaceSize is painted by either the grid or the cell pass.
func (r *Renderer) Render(s Surface, size core.Size, cells CellAccessor) {
	r.drawGrid(s, size)
	r.drawCells(s, size, cells)
}

// drawGrid strokes W+1 vertical and H+1 horizontal lines one stride apart.
// On a half-pixel canvas these are the lines at i*stride+1.
func (r *Renderer) drawGrid(s Surface, size core.Size) {
	cs := r.Geometry.StrokeInset()
	right, bottom := size.W*cs, size.H*cs
	for i := 0; i <= size.W; i++ {
		s.StrokeLine(i*cs, 0, i*cs, bottom, r.Palette.Grid)
	}
	for j := 0; j <= size.H; j++ {
		s.StrokeLine(0, j*cs, right, j*cs, r.Palette.Grid)
	}
}

func (r *Renderer) drawCells(s Surface, size core.Size, cells CellAccessor) {
	edge := r.Geometry.CellSize
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			x, y := r.Geometry.CellOrigin(row, col)
			s.FillRect(x, y, edge, edge, r.Palette.Fill(cells.At(row, col)))
		}
	}
}
