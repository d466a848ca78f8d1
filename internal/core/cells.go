package core

import (
	"errors"
	"fmt"
)

// ErrViewSize is returned when a buffer does not match the grid it claims to
// describe.
var ErrViewSize = errors.New("cell buffer does not match grid size")

// Cell is the decoded state of one grid cell.
type Cell uint8

const (
	// Dead is the zero value of a cell byte.
	Dead Cell = 0
	// Alive is what engines write for a live cell.
	Alive Cell = 1
)

// String returns "dead" or "alive".
func (c Cell) String() string {
	if c == Dead {
		return "dead"
	}
	return "alive"
}

// DecodeCell maps a raw byte to a Cell. Only 0 is Dead; every other value,
// including ones an engine is not supposed to emit, reads as Alive.
func DecodeCell(b uint8) Cell {
	if b == uint8(Dead) {
		return Dead
	}
	return Alive
}

// CellView is a read-only row-major view over an engine's cell buffer. It
// borrows the slice and must not be used after the engine's next Step or
// Toggle.
type CellView struct {
	size Size
	buf  []uint8
}

// NewCellView wraps buf, which must hold exactly size.W*size.H bytes.
func NewCellView(buf []uint8, size Size) (CellView, error) {
	if size.W <= 0 || size.H <= 0 {
		return CellView{}, fmt.Errorf("%w: %dx%d", ErrViewSize, size.W, size.H)
	}
	if len(buf) != size.Cells() {
		return CellView{}, fmt.Errorf("%w: have %d bytes, want %d", ErrViewSize, len(buf), size.Cells())
	}
	return CellView{size: size, buf: buf}, nil
}

// ViewOf acquires a fresh view of the engine's current generation.
func ViewOf(e Engine) (CellView, error) {
	return NewCellView(e.Cells(), e.Size())
}

// Size returns the grid dimensions the view covers.
func (v CellView) Size() Size { return v.size }

// Len returns the number of cells in the view.
func (v CellView) Len() int { return len(v.buf) }

// Index returns the buffer offset of (row, col).
func (v CellView) Index(row, col int) int { return row*v.size.W + col }

// At decodes the cell at (row, col).
func (v CellView) At(row, col int) Cell {
	return DecodeCell(v.buf[v.Index(row, col)])
}

// Alive counts the cells that decode as Alive.
func (v CellView) Alive() int {
	n := 0
	for _, b := range v.buf {
		if DecodeCell(b) == Alive {
			n++
		}
	}
	return n
}
