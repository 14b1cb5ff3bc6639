package assetgen

import (
	"image"
	"image/color"
	"testing"

	"github.com/esimov/assetgen/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	bgColor = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	fgColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestCanvas_ShouldFillBackground(t *testing.T) {
	c := NewCanvas(64, bgColor)

	assert.Equal(t, 64, c.Size())
	assert.Equal(t, bgColor, c.Image().NRGBAAt(0, 0))
	assert.Equal(t, bgColor, c.Image().NRGBAAt(63, 63))
}

func TestCanvas_CenterGlyph(t *testing.T) {
	testCases := []struct {
		name   string
		size   int
		bounds fixed.Rectangle26_6
	}{
		{"even", 1024, fixed.R(10, -300, 230, 0)},
		{"odd", 1024, fixed.R(-3, -287, 218, 5)},
		{"oversized", 100, fixed.R(0, -150, 120, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			origin, box := centerGlyph(tc.size, tc.bounds)

			// The origin shifts the glyph bounds onto the returned box.
			assert.Equal(t, box.Min, image.Pt(
				origin.X+tc.bounds.Min.X.Floor(),
				origin.Y+tc.bounds.Min.Y.Floor(),
			))

			left, right := box.Min.X, tc.size-box.Max.X
			top, bottom := box.Min.Y, tc.size-box.Max.Y
			assert.LessOrEqual(t, utils.Abs(left-right), 1)
			assert.LessOrEqual(t, utils.Abs(top-bottom), 1)
		})
	}
}

func TestCanvas_ShouldCenterDrawnGlyph(t *testing.T) {
	const size = 1024

	c := NewCanvas(size, bgColor)
	face := fallbackFace(GoFallback, 400)
	defer face.Close()

	box := c.DrawGlyph(face, "F", fgColor)
	ink := inkBounds(c.Image(), bgColor)
	if ink.Empty() {
		t.Fatalf("no glyph pixels found on the canvas")
	}

	assert.LessOrEqual(t, utils.Abs(ink.Min.X-(size-ink.Max.X)), 3)
	assert.LessOrEqual(t, utils.Abs(ink.Min.Y-(size-ink.Max.Y)), 3)
	assert.LessOrEqual(t, utils.Abs(ink.Min.X-box.Min.X), 2)
	assert.LessOrEqual(t, utils.Abs(ink.Min.Y-box.Min.Y), 2)
}

func TestCanvas_ShouldDrawWithBitmapFace(t *testing.T) {
	c := NewCanvas(64, bgColor)
	box := c.DrawGlyph(basicfont.Face7x13, "F", fgColor)

	assert.False(t, inkBounds(c.Image(), bgColor).Empty())
	assert.True(t, box.In(c.Image().Bounds()))
}

// inkBounds returns the smallest rectangle holding the pixels which are
// closer to the foreground than to the background.
func inkBounds(img *image.NRGBA, bg color.NRGBA) image.Rectangle {
	var ink image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if int(img.NRGBAAt(x, y).R)-int(bg.R) > 0x70 {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return ink
}
