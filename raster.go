package assetgen

import (
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/esimov/assetgen/utils"
)

// RasterGenerator draws a single glyph on a colored square canvas and
// saves it, then resized copies of it, to the configured outputs.
type RasterGenerator struct {
	OutDir     string
	FontPath   string
	FontSize   float64
	Fallback   Fallback
	Glyph      string
	Background color.Color
	Foreground color.Color
	Filter     imaging.ResampleFilter
	// Outputs lists the generated files. The first entry is the primary
	// icon and its size determines the canvas size.
	Outputs []RasterOutput
	// Stdout receives the status messages. Nil disables them.
	Stdout io.Writer

	fontSource FontSource
}

// NewRasterGenerator returns a generator initialized with the default icon design.
func NewRasterGenerator() *RasterGenerator {
	return &RasterGenerator{
		OutDir:     DefaultOutputDir,
		FontPath:   DefaultFontPath,
		FontSize:   400,
		Fallback:   GoFallback,
		Glyph:      "F",
		Background: color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		Foreground: color.White,
		Filter:     imaging.Lanczos,
		Outputs:    DefaultRasterOutputs(),
		Stdout:     os.Stdout,
	}
}

// FontSource reports which font was used by the last Generate call.
func (g *RasterGenerator) FontSource() FontSource {
	return g.fontSource
}

// Generate renders the icon canvas and writes every raster output.
// Any write failure aborts the run; files written before the failure are kept.
func (g *RasterGenerator) Generate() error {
	if len(g.Outputs) == 0 {
		return errors.New("no raster outputs defined")
	}
	if err := ensureDir(g.OutDir); err != nil {
		return err
	}

	primary := g.Outputs[0]
	canvas := NewCanvas(primary.Size, g.Background)
	g.drawGlyph(canvas)

	if err := saveImg(filepath.Join(g.OutDir, primary.Name), canvas.Image()); err != nil {
		return err
	}
	for _, out := range g.Outputs[1:] {
		img := resizeImg(canvas.Image(), out.Size, g.Filter)
		if err := saveImg(filepath.Join(g.OutDir, out.Name), img); err != nil {
			return err
		}
	}

	printStatus(g.Stdout, "Assets created successfully!", utils.SuccessMessage)
	return nil
}

// drawGlyph acquires the font face, draws the centered glyph and releases the face.
func (g *RasterGenerator) drawGlyph(c *Canvas) {
	face, src := AcquireFace(g.FontPath, g.FontSize, g.Fallback)
	defer face.Close()

	g.fontSource = src
	c.DrawGlyph(face, g.Glyph, g.Foreground)
}
