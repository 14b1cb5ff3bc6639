package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA converts a color expressed in hexadecimal format (#rgb, #rrggbb or #rrggbbaa)
// to a color.NRGBA value. The leading hash is optional.
func HexToRGBA(x string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(x, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", x)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", x)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
