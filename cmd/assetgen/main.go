package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/esimov/assetgen"
	"github.com/esimov/assetgen/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┌┐┌
├─┤└─┐└─┐├┤  │ │ ┬├┤ │││
┴ ┴└─┘└─┘└─┘ ┴ └─┘└─┘┘└┘

Placeholder app icon, splash screen and favicon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	mode       = flag.String("mode", "raster", "Generator to run: raster or vector")
	outDir     = flag.String("out", assetgen.DefaultOutputDir, "Output directory")
	fontPath   = flag.String("font", assetgen.DefaultFontPath, "Preferred font file path or URL")
	fallback   = flag.String("fallback", string(assetgen.GoFallback), "Fallback font: go or basic")
	fontSize   = flag.Float64("size", 400, "Glyph font size in points")
	glyph      = flag.String("glyph", "F", "Glyph drawn on the icon")
	background = flag.String("bg", "#2563EB", "Icon background color")
	foreground = flag.String("fg", "#ffffff", "Glyph color")
	filter     = flag.String("filter", "lanczos", "Resampling filter: lanczos, catmullrom, linear, box, nearest")
	withIco    = flag.Bool("ico", false, "Also generate favicon.ico")
	rasterize  = flag.Bool("rasterize", false, "Convert the generated SVG files to PNG (vector mode)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	utils.SetColor(utils.IsTerminal(os.Stdout))

	// The status lines are buffered while the spinner is running.
	status := new(bytes.Buffer)
	now := time.Now()

	switch strings.ToLower(*mode) {
	case "raster":
		err := run(rasterGenerator(status))
		io.Copy(os.Stdout, status)
		if err != nil {
			log.Fatalf("%s %s",
				utils.DecorateText("Error generating the raster assets:", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	case "vector":
		err := run(vectorGenerator(status))
		io.Copy(os.Stdout, status)
		if err != nil {
			fmt.Println(utils.DecorateText(fmt.Sprintf("❌ Error creating assets: %v", err), utils.ErrorMessage))
			os.Exit(1)
		}
	default:
		flag.Usage()
		log.Fatalf(utils.DecorateText("\nUnsupported generator mode: %q", utils.ErrorMessage), *mode)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// run executes the generator. The progress indicator is shown only
// when the standard error is attached to a terminal.
func run(gen assetgen.Generator) error {
	if !utils.IsTerminal(os.Stderr) {
		return gen.Generate()
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ASSETGEN", utils.StatusMessage),
		utils.DecorateText("is generating the assets...", utils.DefaultMessage))
	spinner := utils.NewSpinner(os.Stderr, spinnerText, time.Millisecond*80)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()
	defer signal.Stop(signalChan)

	spinner.Start()
	err := gen.Generate()
	spinner.Stop()

	return err
}

// rasterGenerator builds the raster generator from the command line flags.
// Invalid flag values are fatal.
func rasterGenerator(status io.Writer) *assetgen.RasterGenerator {
	bg, err := utils.HexToRGBA(*background)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid background color: %v", utils.ErrorMessage), err)
	}
	fg, err := utils.HexToRGBA(*foreground)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid foreground color: %v", utils.ErrorMessage), err)
	}
	resample, err := assetgen.Filter(*filter)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v", utils.ErrorMessage), err)
	}
	fb := assetgen.Fallback(strings.ToLower(*fallback))
	if fb != assetgen.GoFallback && fb != assetgen.BasicFallback {
		log.Fatalf(utils.DecorateText("Unsupported fallback font: %q", utils.ErrorMessage), *fallback)
	}
	if len([]rune(*glyph)) == 0 {
		log.Fatal(utils.DecorateText("Please provide a glyph to draw", utils.ErrorMessage))
	}

	g := assetgen.NewRasterGenerator()
	g.OutDir = *outDir
	g.FontPath = *fontPath
	g.FontSize = *fontSize
	g.Fallback = fb
	g.Glyph = *glyph
	g.Background = bg
	g.Foreground = fg
	g.Filter = resample
	g.Stdout = status
	if *withIco {
		g.Outputs = append(g.Outputs, assetgen.RasterOutput{
			Role: assetgen.Favicon,
			Name: "favicon.ico",
			Size: 32,
		})
	}
	return g
}

func vectorGenerator(status io.Writer) *assetgen.VectorGenerator {
	g := assetgen.NewVectorGenerator()
	g.OutDir = *outDir
	g.Rasterize = *rasterize
	g.Stdout = status
	return g
}
