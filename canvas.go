package assetgen

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is the square pixel buffer the icon glyph is drawn on.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas allocates a size x size canvas filled with the background color.
func NewCanvas(size int, bg color.Color) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	return &Canvas{img: img}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.img.Bounds().Dx()
}

// DrawGlyph draws s centered on the canvas using the provided face and color.
// It returns the glyph bounding box in canvas coordinates.
func (c *Canvas) DrawGlyph(face font.Face, s string, fg color.Color) image.Rectangle {
	bounds, _ := font.BoundString(face, s)
	origin, box := centerGlyph(c.Size(), bounds)

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(s)

	return box
}

// centerGlyph computes the drawing origin (the baseline dot) which places the glyph
// bounding box in the middle of the canvas, and the resulting box position.
func centerGlyph(size int, bounds fixed.Rectangle26_6) (image.Point, image.Rectangle) {
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	w := bounds.Max.X.Ceil() - minX
	h := bounds.Max.Y.Ceil() - minY

	// Offsets turn negative for glyphs larger than the canvas, which keeps them centered.
	x := (size - w) / 2
	y := (size - h) / 2

	origin := image.Pt(x-minX, y-minY)
	return origin, image.Rect(x, y, x+w, y+h)
}
