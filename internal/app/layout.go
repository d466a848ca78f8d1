package app

import (
	"image"

	"cellview/internal/ui"
)

// screenLayout splits the window into the grid area and the control strip
// below it.
type screenLayout struct {
	surface  image.Rectangle
	panelTop int
}

// fitSurface scales an intrinsic surface uniformly into an outside area,
// leaving ui.PanelHeight pixels at the bottom for the controls. The surface
// keeps its aspect ratio and is anchored at the top-left.
func fitSurface(intrinsic image.Point, outsideW, outsideH int) screenLayout {
	availH := outsideH - ui.PanelHeight
	if availH < 1 {
		availH = 1
	}
	if outsideW < 1 {
		outsideW = 1
	}
	l := screenLayout{panelTop: availH}
	if intrinsic.X <= 0 || intrinsic.Y <= 0 {
		return l
	}
	scale := float64(outsideW) / float64(intrinsic.X)
	if sy := float64(availH) / float64(intrinsic.Y); sy < scale {
		scale = sy
	}
	w := int(float64(intrinsic.X) * scale)
	h := int(float64(intrinsic.Y) * scale)
	l.surface = image.Rect(0, 0, max(w, 1), max(h, 1))
	return l
}

// windowSize is the initial outside size for a surface shown at scale.
func windowSize(intrinsic image.Point, scale int) (int, int) {
	if scale < 1 {
		scale = 1
	}
	return intrinsic.X * scale, intrinsic.Y*scale + ui.PanelHeight
}
