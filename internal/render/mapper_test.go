package render

import (
	"image"
	"testing"

	"cellview/internal/core"
)

func TestMapperCellOrigins(t *testing.T) {
	g := DefaultGeometry()
	grid := core.Size{W: 7, H: 5}
	m := Mapper{Geometry: g, Grid: grid}
	sw, sh := g.SurfaceSize(grid)
	intrinsic := image.Pt(sw, sh)
	displayed := Rect{Left: 0, Top: 0, Width: float64(sw), Height: float64(sh)}

	for r := 0; r < grid.H; r++ {
		for c := 0; c < grid.W; c++ {
			x, y := g.CellOrigin(r, c)
			row, col := m.Map(Pointer{X: float64(x), Y: float64(y)}, displayed, intrinsic)
			if row != r || col != c {
				t.Fatalf("origin of (%d,%d) mapped to (%d,%d)", r, c, row, col)
			}
		}
	}
}

func TestMapperScaledAndOffset(t *testing.T) {
	g := DefaultGeometry()
	grid := core.Size{W: 10, H: 10}
	m := Mapper{Geometry: g, Grid: grid}
	sw, sh := g.SurfaceSize(grid)
	// Shown at twice its intrinsic size, 100px from the left and 40px down.
	displayed := Rect{Left: 100, Top: 40, Width: float64(2 * sw), Height: float64(2 * sh)}

	x, y := g.CellOrigin(3, 8)
	p := Pointer{X: 100 + 2*float64(x), Y: 40 + 2*float64(y)}
	row, col := m.Map(p, displayed, image.Pt(sw, sh))
	if row != 3 || col != 8 {
		t.Fatalf("mapped to (%d,%d), want (3,8)", row, col)
	}
}

func TestMapperClampsOutside(t *testing.T) {
	g := DefaultGeometry()
	grid := core.Size{W: 4, H: 9}
	m := Mapper{Geometry: g, Grid: grid}
	sw, sh := g.SurfaceSize(grid)
	displayed := Rect{Left: 10, Top: 10, Width: float64(sw), Height: float64(sh)}
	intrinsic := image.Pt(sw, sh)

	cases := []struct {
		p        Pointer
		row, col int
	}{
		{Pointer{X: -50, Y: -50}, 0, 0},
		{Pointer{X: 9.5, Y: 500}, 8, 0},
		{Pointer{X: 1000, Y: 11}, 0, 3},
		{Pointer{X: 1000, Y: 1000}, 8, 3},
	}
	for _, tc := range cases {
		row, col := m.Map(tc.p, displayed, intrinsic)
		if row != tc.row || col != tc.col {
			t.Fatalf("Map(%+v) = (%d,%d), want (%d,%d)", tc.p, row, col, tc.row, tc.col)
		}
		if row < 0 || col < 0 {
			t.Fatalf("Map(%+v) produced a negative index", tc.p)
		}
	}
}

func TestMapperDegenerateRect(t *testing.T) {
	m := Mapper{Geometry: DefaultGeometry(), Grid: core.Size{W: 3, H: 3}}
	row, col := m.Map(Pointer{X: 7, Y: 13}, Rect{}, image.Pt(19, 19))
	if row != 2 || col != 1 {
		t.Fatalf("Map with empty rect = (%d,%d), want (2,1)", row, col)
	}
}
