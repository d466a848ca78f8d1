package render

import (
	"image"
	"math"

	"cellview/internal/core"
)

// Pointer is a pointer position in the host's client coordinates.
type Pointer struct {
	X, Y float64
}

// Rect is where the surface is displayed, in client coordinates.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// RectOf converts an integer rectangle into a display Rect.
func RectOf(r image.Rectangle) Rect {
	return Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Pointer) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Mapper converts pointer positions into grid indices.
type Mapper struct {
	Geometry Geometry
	Grid     core.Size
}

// Map returns the (row, col) under p when a surface of intrinsic pixel size
// is shown stretched over displayed. Positions outside the surface clamp to
// the nearest edge cell.
func (m Mapper) Map(p Pointer, displayed Rect, intrinsic image.Point) (row, col int) {
	scaleX, scaleY := 1.0, 1.0
	if displayed.Width > 0 {
		scaleX = float64(intrinsic.X) / displayed.Width
	}
	if displayed.Height > 0 {
		scaleY = float64(intrinsic.Y) / displayed.Height
	}
	localX := (p.X - displayed.Left) * scaleX
	localY := (p.Y - displayed.Top) * scaleY

	cs := float64(m.Geometry.StrokeInset())
	row = clamp(int(math.Floor(localY/cs)), 0, m.Grid.H-1)
	col = clamp(int(math.Floor(localX/cs)), 0, m.Grid.W-1)
	return row, col
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
