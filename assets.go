package assetgen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Role is the functional category of a generated asset.
type Role string

const (
	Icon         Role = "icon"
	AdaptiveIcon Role = "adaptive-icon"
	Splash       Role = "splash"
	Favicon      Role = "favicon"
)

// DefaultOutputDir is the directory relative to the working directory where
// the assets are written when no other directory is provided.
const DefaultOutputDir = "assets"

// RasterOutput describes one raster file produced from the icon canvas.
type RasterOutput struct {
	Role Role
	Name string // file name inside the output directory
	Size int    // width and height in pixels
}

// VectorOutput describes one SVG file written verbatim from its template.
type VectorOutput struct {
	Role     Role
	Name     string
	Template string
	ViewBox  int // the template's viewBox is "0 0 ViewBox ViewBox"
}

// PNGName returns the name of the rasterized counterpart of the vector output.
func (v VectorOutput) PNGName() string {
	return strings.TrimSuffix(v.Name, filepath.Ext(v.Name)) + ".png"
}

// String returns the human readable description used in the summary.
func (v VectorOutput) String() string {
	return fmt.Sprintf("%s (%dx%d)", v.PNGName(), v.ViewBox, v.ViewBox)
}

// DefaultRasterOutputs returns the raster outputs. The first entry is the
// primary icon, saved at the full canvas resolution.
func DefaultRasterOutputs() []RasterOutput {
	return []RasterOutput{
		{Role: Icon, Name: "icon.png", Size: 1024},
		{Role: AdaptiveIcon, Name: "adaptive-icon.png", Size: 192},
		{Role: Splash, Name: "splash.png", Size: 1024},
		{Role: Favicon, Name: "favicon.png", Size: 32},
	}
}

// DefaultVectorOutputs returns the SVG outputs in the order they are written.
func DefaultVectorOutputs() []VectorOutput {
	return []VectorOutput{
		{Role: Splash, Name: "splash.svg", Template: SplashSVG, ViewBox: 1024},
		{Role: AdaptiveIcon, Name: "adaptive-icon.svg", Template: AdaptiveIconSVG, ViewBox: 1024},
		{Role: Favicon, Name: "favicon.svg", Template: FaviconSVG, ViewBox: 512},
	}
}

// SplashSVG is the splash screen template.
const SplashSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="1024" height="1024" viewBox="0 0 1024 1024" xmlns="http://www.w3.org/2000/svg">
  <rect width="1024" height="1024" fill="#ffffff"/>
  <circle cx="512" cy="350" r="120" fill="#3B82F6"/>
  <rect x="412" y="470" width="200" height="20" rx="10" fill="#3B82F6"/>
  <rect x="462" y="510" width="100" height="15" rx="7" fill="#6B7280"/>
  <text x="512" y="600" text-anchor="middle" font-family="Arial, sans-serif" font-size="48" font-weight="bold" fill="#1F2937">Finvinity</text>
  <text x="512" y="650" text-anchor="middle" font-family="Arial, sans-serif" font-size="24" fill="#6B7280">Portfolio Tracker</text>
</svg>`

// AdaptiveIconSVG is the adaptive icon foreground template. The background
// is left transparent.
const AdaptiveIconSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="1024" height="1024" viewBox="0 0 1024 1024" xmlns="http://www.w3.org/2000/svg">
  <rect width="1024" height="1024" fill="none"/>
  <circle cx="512" cy="400" r="140" fill="#3B82F6"/>
  <rect x="392" y="540" width="240" height="25" rx="12" fill="#3B82F6"/>
  <rect x="442" y="585" width="140" height="18" rx="9" fill="#1F2937"/>
  <text x="512" y="720" text-anchor="middle" font-family="Arial, sans-serif" font-size="56" font-weight="bold" fill="#1F2937">F</text>
</svg>`

// FaviconSVG is the favicon template.
const FaviconSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="512" height="512" viewBox="0 0 512 512" xmlns="http://www.w3.org/2000/svg">
  <rect width="512" height="512" fill="#3B82F6"/>
  <circle cx="256" cy="200" r="70" fill="#ffffff"/>
  <rect x="206" y="270" width="100" height="12" rx="6" fill="#ffffff"/>
  <rect x="231" y="295" width="50" height="9" rx="4" fill="#E5E7EB"/>
  <text x="256" y="380" text-anchor="middle" font-family="Arial, sans-serif" font-size="80" font-weight="bold" fill="#ffffff">F</text>
</svg>`
