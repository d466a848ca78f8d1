package ui

import "image"

// Action is what a click on the control panel asks for.
type Action int

const (
	// ActionNone means the click missed every control.
	ActionNone Action = iota
	// ActionTogglePlay flips between playing and paused.
	ActionTogglePlay
	// ActionSlower lowers the frame-rate limit by one step.
	ActionSlower
	// ActionFaster raises the frame-rate limit by one step.
	ActionFaster
)

// PanelHeight is the height of the control strip in pixels.
const PanelHeight = 36

const (
	panelPadding = 8
	buttonSize   = 24
	buttonGap    = 6
	playWidth    = 56
	rateWidth    = 64
	textBaseline = 17
)

// Panel lays out the play/pause button and the frame-rate stepper in a strip
// below the grid. Coordinates are relative to the top-left of the strip.
type Panel struct {
	width int

	playRect  image.Rectangle
	minusRect image.Rectangle
	plusRect  image.Rectangle
	rateText  image.Point
	infoText  image.Point
}

// NewPanel lays out a panel for a strip of the given width.
func NewPanel(width int) *Panel {
	p := &Panel{}
	p.Resize(width)
	return p
}

// Resize recomputes control positions for a new strip width.
func (p *Panel) Resize(width int) {
	if width < 0 {
		width = 0
	}
	p.width = width
	top := (PanelHeight - buttonSize) / 2
	p.playRect = image.Rect(panelPadding, top, panelPadding+playWidth, top+buttonSize)

	x := p.playRect.Max.X + panelPadding
	p.minusRect = image.Rect(x, top, x+buttonSize, top+buttonSize)
	x = p.minusRect.Max.X + buttonGap
	p.rateText = image.Pt(x, top+textBaseline)
	x += rateWidth
	p.plusRect = image.Rect(x, top, x+buttonSize, top+buttonSize)
	p.infoText = image.Pt(p.plusRect.Max.X+panelPadding*2, top+textBaseline)
}

// Width returns the strip width the panel was laid out for.
func (p *Panel) Width() int { return p.width }

// PlayRect is the play/pause button.
func (p *Panel) PlayRect() image.Rectangle { return p.playRect }

// MinusRect is the slower button.
func (p *Panel) MinusRect() image.Rectangle { return p.minusRect }

// PlusRect is the faster button.
func (p *Panel) PlusRect() image.Rectangle { return p.plusRect }

// Hit returns the control under (x, y), in strip coordinates.
func (p *Panel) Hit(x, y int) Action {
	switch {
	case pointInRect(x, y, p.playRect):
		return ActionTogglePlay
	case pointInRect(x, y, p.minusRect):
		return ActionSlower
	case pointInRect(x, y, p.plusRect):
		return ActionFaster
	}
	return ActionNone
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
