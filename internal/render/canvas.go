package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Canvas is an RGBA raster Surface.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a w*h canvas cleared to transparent black.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pix exposes the RGBA bytes, suitable for uploading to a texture.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// StrokeLine draws a horizontal or vertical 1px segment. Diagonal segments
// are not used by the renderer and are ignored.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 int, col color.Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	switch {
	case x0 == x1:
		c.fill(image.Rect(x0, y0, x0+1, y1+1), col)
	case y0 == y1:
		c.fill(image.Rect(x0, y0, x1+1, y0+1), col)
	}
}

// FillRect fills the w*h rectangle whose top-left pixel is (x, y).
func (c *Canvas) FillRect(x, y, w, h int, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.fill(image.Rect(x, y, x+w, y+h), col)
}

// Scaled returns a nearest-neighbour upscale of the canvas. factor <= 1
// returns the canvas image itself.
func (c *Canvas) Scaled(factor int) *image.RGBA {
	if factor <= 1 {
		return c.img
	}
	b := c.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, b, xdraw.Src, nil)
	return dst
}

// fill paints col over r clipped to the canvas.
func (c *Canvas) fill(r image.Rectangle, col color.Color) {
	xdraw.Draw(c.img, r, image.NewUniform(col), image.Point{}, xdraw.Src)
}

// rgba converts any color to 8-bit premultiplied RGBA.
func rgba(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}
