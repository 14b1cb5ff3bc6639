/*
Package assetgen generates the placeholder graphical assets (app icon, adaptive icon,
splash screen and favicon) of a mobile application project.

Two independent generators are provided. RasterGenerator draws a single glyph on a
colored square canvas and saves it, together with resized copies, as raster images.
VectorGenerator writes a fixed set of SVG templates verbatim and can optionally
convert them to PNG.

The package ships with a command line interface. To check the supported flags type:

	$ assetgen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/assetgen"
	)

	func main() {
		g := assetgen.NewRasterGenerator()
		g.OutDir = "assets"

		if err := g.Generate(); err != nil {
			log.Fatalf("Error generating the assets: %v", err)
		}
	}
*/
package assetgen
