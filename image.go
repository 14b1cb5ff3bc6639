package assetgen

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when the output file extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// filters maps the resampling filter names accepted on the command line.
var filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// Filter returns the resampling filter registered under name.
func Filter(name string) (imaging.ResampleFilter, error) {
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resampling filter: %q", name)
	}
	return f, nil
}

// encoders holds the image encoders, indexed by file extension.
var encoders = map[string]func(io.Writer, image.Image) error{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp":  bmp.Encode,
	".ico":  ico.Encode,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
}

// saveImg creates (or truncates) the file at path and encodes the image into it,
// using the encoder matching the file extension.
func saveImg(path string, img image.Image) error {
	encode, ok := encoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("unable to encode %s: %w", path, err)
	}
	return f.Close()
}

// resizeImg returns a size x size copy of the source image.
func resizeImg(src image.Image, size int, filter imaging.ResampleFilter) *image.NRGBA {
	return imaging.Resize(src, size, size, filter)
}
