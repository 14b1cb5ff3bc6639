package assetgen

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/esimov/assetgen/utils"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// VectorGenerator writes the SVG templates verbatim into the output directory.
type VectorGenerator struct {
	OutDir  string
	Outputs []VectorOutput
	// Rasterize converts each written SVG into a PNG of its viewBox size.
	Rasterize bool
	// Stdout receives the status messages. Nil disables them.
	Stdout io.Writer
}

// NewVectorGenerator returns a generator writing the default templates.
func NewVectorGenerator() *VectorGenerator {
	return &VectorGenerator{
		OutDir:  DefaultOutputDir,
		Outputs: DefaultVectorOutputs(),
		Stdout:  os.Stdout,
	}
}

// Generate writes every template in order. The first failure stops the run:
// the remaining templates are not attempted and the error is returned.
func (g *VectorGenerator) Generate() error {
	if err := ensureDir(g.OutDir); err != nil {
		return err
	}

	for _, out := range g.Outputs {
		if err := writeTemplate(filepath.Join(g.OutDir, out.Name), out.Template); err != nil {
			return err
		}
		printStatus(g.Stdout, "✅ Created "+out.Name, utils.SuccessMessage)
	}

	if g.Rasterize {
		for _, out := range g.Outputs {
			src := filepath.Join(g.OutDir, out.Name)
			dst := filepath.Join(g.OutDir, out.PNGName())
			if err := rasterizeSVG(src, dst, out.ViewBox); err != nil {
				return err
			}
			printStatus(g.Stdout, "✅ Rasterized "+out.PNGName(), utils.SuccessMessage)
		}
	}

	g.summary()
	return nil
}

// summary prints the closing notes of a successful run.
func (g *VectorGenerator) summary() {
	printStatus(g.Stdout, "\n🎉 Asset generation complete!", utils.StatusMessage)
	if g.Rasterize {
		return
	}
	printStatus(g.Stdout, "📝 Note: You may need to convert SVG files to PNG format for production use.", utils.DefaultMessage)
	printStatus(g.Stdout, "   You can use online converters, tools like ImageMagick, or rerun with -rasterize:", utils.DefaultMessage)
	for _, out := range g.Outputs {
		printStatus(g.Stdout, "   - "+out.String(), utils.DefaultMessage)
	}
}

// writeTemplate creates (or truncates) the file and writes the markup unchanged.
func writeTemplate(path, markup string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	if _, err := io.WriteString(f, markup); err != nil {
		f.Close()
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close %s: %w", path, err)
	}
	return nil
}

// rasterizeSVG renders the SVG file found at src into a size x size image saved at dst.
// SVG elements without rasterizer support, like text, are skipped.
func rasterizeSVG(src, dst string, size int) error {
	icon, err := oksvg.ReadIcon(src, oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("unable to parse %s: %w", src, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return saveImg(dst, img)
}
