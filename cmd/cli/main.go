// specplot - Spectrum Alignment Tool
//
// specplot parses instrument-exported spectrum text files and aligns
// them onto a shared wavelength axis for charting.
package main

import (
	"os"

	"github.com/specplot/specplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
