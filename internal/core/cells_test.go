package core

import (
	"errors"
	"testing"
)

func TestDecodeCell(t *testing.T) {
	cases := []struct {
		in   uint8
		want Cell
	}{
		{0, Dead},
		{1, Alive},
		{2, Alive},
		{255, Alive},
	}
	for _, tc := range cases {
		if got := DecodeCell(tc.in); got != tc.want {
			t.Fatalf("DecodeCell(%d) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCellViewRowMajor(t *testing.T) {
	buf := []uint8{
		0, 1, 0,
		1, 0, 2,
	}
	v, err := NewCellView(buf, Size{W: 3, H: 2})
	if err != nil {
		t.Fatalf("NewCellView: %v", err)
	}
	if v.Len() != 6 {
		t.Fatalf("Len = %d, want 6", v.Len())
	}
	if v.Index(1, 2) != 5 {
		t.Fatalf("Index(1,2) = %d, want 5", v.Index(1, 2))
	}
	if v.At(0, 1) != Alive || v.At(1, 0) != Alive || v.At(1, 2) != Alive {
		t.Fatal("expected alive cells at (0,1), (1,0) and (1,2)")
	}
	if v.At(0, 0) != Dead || v.At(1, 1) != Dead {
		t.Fatal("expected dead cells at (0,0) and (1,1)")
	}
	if v.Alive() != 3 {
		t.Fatalf("Alive = %d, want 3", v.Alive())
	}
}

func TestCellViewBorrowsBuffer(t *testing.T) {
	buf := make([]uint8, 4)
	v, err := NewCellView(buf, Size{W: 2, H: 2})
	if err != nil {
		t.Fatalf("NewCellView: %v", err)
	}
	buf[3] = 1
	if v.At(1, 1) != Alive {
		t.Fatal("view must read through to the engine's buffer")
	}
}

func TestCellViewRejectsMismatchedBuffer(t *testing.T) {
	if _, err := NewCellView(make([]uint8, 5), Size{W: 2, H: 2}); !errors.Is(err, ErrViewSize) {
		t.Fatalf("err = %v, want ErrViewSize", err)
	}
	if _, err := NewCellView(nil, Size{W: 0, H: 3}); !errors.Is(err, ErrViewSize) {
		t.Fatalf("err = %v, want ErrViewSize for empty grid", err)
	}
}

func TestByteGridFlip(t *testing.T) {
	g := NewByteGrid(3, 2)
	if err := g.Flip(1, 2); err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if g.Cells()[5] != 1 {
		t.Fatalf("cell (1,2) = %d, want 1", g.Cells()[5])
	}
	g.Cells()[0] = 2
	if err := g.Flip(0, 0); err != nil {
		t.Fatalf("Flip: %v", err)
	}
	if g.Cells()[0] != 0 {
		t.Fatalf("flipping a nonzero cell must clear it, got %d", g.Cells()[0])
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if err := g.Flip(rc[0], rc[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Flip(%d,%d) err = %v, want ErrOutOfRange", rc[0], rc[1], err)
		}
	}
}

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(4, 3)
	row, col := g.Wrap(-1, 4)
	if row != 2 || col != 0 {
		t.Fatalf("Wrap(-1,4) = (%d,%d), want (2,0)", row, col)
	}
}
