package app

import (
	"image"
	"testing"

	"cellview/internal/ui"
)

func TestFitSurface(t *testing.T) {
	cases := []struct {
		name      string
		intrinsic image.Point
		w, h      int
		want      image.Rectangle
	}{
		{"exact", image.Pt(100, 50), 100, 50 + ui.PanelHeight, image.Rect(0, 0, 100, 50)},
		{"double", image.Pt(100, 50), 200, 100 + ui.PanelHeight, image.Rect(0, 0, 200, 100)},
		{"width bound", image.Pt(100, 100), 100, 400, image.Rect(0, 0, 100, 100)},
		{"height bound", image.Pt(100, 100), 400, 50 + ui.PanelHeight, image.Rect(0, 0, 50, 50)},
	}
	for _, tc := range cases {
		l := fitSurface(tc.intrinsic, tc.w, tc.h)
		if l.surface != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, l.surface)
		}
		if l.panelTop != tc.h-ui.PanelHeight {
			t.Fatalf("%s: expected panel at %d, got %d", tc.name, tc.h-ui.PanelHeight, l.panelTop)
		}
	}
}

func TestFitSurfaceTinyWindow(t *testing.T) {
	l := fitSurface(image.Pt(100, 100), 0, 0)
	if l.surface.Dx() < 1 || l.surface.Dy() < 1 {
		t.Fatalf("expected a non-empty surface, got %v", l.surface)
	}
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(image.Pt(321, 161), 2)
	if w != 642 || h != 322+ui.PanelHeight {
		t.Fatalf("unexpected window %dx%d", w, h)
	}
	if w, _ := windowSize(image.Pt(10, 10), 0); w != 10 {
		t.Fatalf("expected scale to clamp to 1, got width %d", w)
	}
}
