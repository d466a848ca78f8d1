package app

import (
	"image"
	"image/color"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	glyphHorizontal = '─'
	glyphVertical   = '│'
	glyphCross      = '┼'
	glyphAlive      = '█'
	glyphDead       = ' '
)

// termCellSize gives each cell a single character, so gridlines fall on
// even rows and columns.
const termCellSize = 1

// TextSurface is a character matrix used as the terminal's drawing target.
// One character stands for one pixel. Fills in the alive color become a
// full block; any other fill is blank.
type TextSurface struct {
	w, h   int
	alive  color.RGBA
	glyphs []rune
}

// NewTextSurface returns a w x h surface that treats alive as the live-cell
// fill color.
func NewTextSurface(w, h int, alive color.Color) *TextSurface {
	s := &TextSurface{
		w:      w,
		h:      h,
		alive:  color.RGBAModel.Convert(alive).(color.RGBA),
		glyphs: make([]rune, w*h),
	}
	for i := range s.glyphs {
		s.glyphs[i] = glyphDead
	}
	return s
}

func (s *TextSurface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

// StrokeLine draws a box-drawing segment. Crossing segments merge into a
// cross glyph.
func (s *TextSurface) StrokeLine(x0, y0, x1, y1 int, _ color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	switch {
	case y0 == y1:
		for x := x0; x <= x1; x++ {
			s.stroke(x, y0, glyphHorizontal)
		}
	case x0 == x1:
		for y := y0; y <= y1; y++ {
			s.stroke(x0, y, glyphVertical)
		}
	}
}

func (s *TextSurface) stroke(x, y int, g rune) {
	i, ok := s.index(x, y)
	if !ok {
		return
	}
	switch cur := s.glyphs[i]; {
	case cur == glyphCross:
	case (cur == glyphHorizontal || cur == glyphVertical) && cur != g:
		s.glyphs[i] = glyphCross
	default:
		s.glyphs[i] = g
	}
}

// FillRect sets every character of the clipped rectangle.
func (s *TextSurface) FillRect(x, y, w, h int, c color.Color) {
	g := glyphDead
	if color.RGBAModel.Convert(c).(color.RGBA) == s.alive {
		g = glyphAlive
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.Bounds())
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			s.glyphs[yy*s.w+xx] = g
		}
	}
}

// At returns the glyph at (x, y), or zero outside the surface.
func (s *TextSurface) At(x, y int) rune {
	i, ok := s.index(x, y)
	if !ok {
		return 0
	}
	return s.glyphs[i]
}

// Lines returns the surface as plain text, one string per row.
func (s *TextSurface) Lines() []string {
	out := make([]string, s.h)
	for y := range out {
		out[y] = string(s.glyphs[y*s.w : (y+1)*s.w])
	}
	return out
}

// String renders the surface with live cells colored for the terminal.
func (s *TextSurface) String() string {
	alive := aurora.Green(string(glyphAlive)).BgBrightGreen().String()
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		for _, g := range s.glyphs[y*s.w : (y+1)*s.w] {
			if g == glyphAlive {
				b.WriteString(alive)
				continue
			}
			b.WriteRune(g)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *TextSurface) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}
