//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	panelText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	panelDimText    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// PanelState is what the panel shows on one frame.
type PanelState struct {
	PlayLabel string
	FPS       int
	Info      string
}

// Painter draws a Panel with ebiten.
type Painter struct {
	panel *Panel
	strip *ebiten.Image
	pixel *ebiten.Image
}

// NewPainter returns a painter for p.
func NewPainter(p *Panel) *Painter {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Painter{panel: p, pixel: pixel}
}

// Draw paints the strip onto screen with its top edge at offsetY.
func (pp *Painter) Draw(screen *ebiten.Image, offsetY int, st PanelState) {
	w := pp.panel.Width()
	if w <= 0 {
		return
	}
	if pp.strip == nil || pp.strip.Bounds().Dx() != w {
		pp.strip = ebiten.NewImage(w, PanelHeight)
	}
	pp.strip.Fill(panelBackground)

	pp.drawButton(pp.panel.playRect, st.PlayLabel, true)
	pp.drawButton(pp.panel.minusRect, "-", st.FPS > 1)
	pp.drawButton(pp.panel.plusRect, "+", true)

	face := basicfont.Face7x13
	rate := strconv.Itoa(st.FPS) + " fps"
	text.Draw(pp.strip, rate, face, pp.panel.rateText.X, pp.panel.rateText.Y, panelText)
	if st.Info != "" {
		text.Draw(pp.strip, st.Info, face, pp.panel.infoText.X, pp.panel.infoText.Y, panelDimText)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(pp.strip, op)
}

func (pp *Painter) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	pp.strip.DrawImage(pp.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(pp.strip, label, face, x, y, fg)
}
