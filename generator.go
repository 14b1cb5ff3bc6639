package assetgen

import (
	"fmt"
	"io"
	"os"

	"github.com/esimov/assetgen/utils"
)

// Generator is implemented by the asset generators. Generate writes
// the complete asset set, overwriting the files of a previous run.
type Generator interface {
	Generate() error
}

var (
	_ Generator = (*RasterGenerator)(nil)
	_ Generator = (*VectorGenerator)(nil)
)

// ensureDir creates the output directory, including any missing parents.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create the output directory: %w", err)
	}
	return nil
}

// printStatus writes a single decorated status line.
func printStatus(w io.Writer, msg string, msgType utils.MessageType) {
	if w == nil {
		return
	}
	fmt.Fprintln(w, utils.DecorateText(msg, msgType))
}
