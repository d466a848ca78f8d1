package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Flip toggles the cell at (row, col) between 0 and 1. Any nonzero value
// flips to 0.
func (g *ByteGrid) Flip(row, col int) error {
	if !g.Size().Contains(row, col) {
		return ErrOutOfRange
	}
	idx := g.Index(row, col)
	if g.data[idx] != 0 {
		g.data[idx] = 0
		return nil
	}
	g.data[idx] = 1
	return nil
}

// Swap exchanges the backing slice with buf and returns the previous one.
// buf must have W*H elements.
func (g *ByteGrid) Swap(buf []uint8) []uint8 {
	prev := g.data
	g.data = buf
	return prev
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
