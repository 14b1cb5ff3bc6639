package assetgen

import (
	"fmt"
	"io"
	"os"

	"github.com/esimov/assetgen/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath is the system font tried first when drawing the icon glyph.
const DefaultFontPath = "/System/Library/Fonts/Arial.ttf"

// FontSource tells which branch of the font acquisition produced the face.
type FontSource int

const (
	// FontPreferred means the requested font file was loaded.
	FontPreferred FontSource = iota
	// FontFallback means the requested font was unavailable and a built-in face was used.
	FontFallback
)

func (s FontSource) String() string {
	if s == FontPreferred {
		return "preferred"
	}
	return "fallback"
}

// Fallback selects the built-in face used when the preferred font can't be loaded.
type Fallback string

const (
	// GoFallback uses the embedded Go Regular font at the requested size.
	GoFallback Fallback = "go"
	// BasicFallback uses the fixed size 7x13 bitmap face.
	BasicFallback Fallback = "basic"
)

// AcquireFace returns a font face for the font found at path (a local file or an URL)
// at the given point size. If the font can't be loaded the documented fallback face
// is returned instead; the load failure is never propagated to the caller.
// The caller must close the returned face.
func AcquireFace(path string, size float64, fb Fallback) (font.Face, FontSource) {
	face, err := loadFace(path, size)
	if err != nil {
		return fallbackFace(fb, size), FontFallback
	}
	return face, FontPreferred
}

// loadFace reads and parses the font file, then creates a face of the requested size.
func loadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return nil, fmt.Errorf("no font path provided")
	}
	data, err := readFont(path)
	if err != nil {
		return nil, err
	}
	f, err := parseFont(data)
	if err != nil {
		return nil, err
	}
	return newFace(f, size)
}

// readFont returns the raw font data. Remote fonts are downloaded into
// a temporary file, which is removed after reading.
func readFont(path string) ([]byte, error) {
	if !utils.IsValidUrl(path) {
		return os.ReadFile(path)
	}
	tmp, err := utils.DownloadFile(path, "font")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(tmp)
}

// parseFont parses a single font file. For font collections (.ttc, .otc)
// the first font of the collection is used.
func parseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err == nil {
		return f, nil
	}
	c, cerr := opentype.ParseCollection(data)
	if cerr != nil || c.NumFonts() == 0 {
		return nil, fmt.Errorf("could not parse the font file: %w", err)
	}
	return c.Font(0)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// fallbackFace never fails: if the Go font can't be instantiated the bitmap face is used.
func fallbackFace(fb Fallback, size float64) font.Face {
	if fb == BasicFallback {
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := newFace(f, size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
