// Package spectrum provides decoding and parsing of instrument-exported
// spectrum text files into (wavelength, absorbance) point series.
package spectrum

// Upload is a raw file as supplied by the caller. The engine never
// mutates Name or Data.
type Upload struct {
	// Name is the file name as uploaded, extension included.
	Name string

	// Data is the raw, fully-buffered file content.
	Data []byte
}

// Point is a single (wavelength, absorbance) measurement.
type Point struct {
	X float64
	Y float64
}

// Spectrum is the result of successfully parsing one upload.
type Spectrum struct {
	// Name is the upload name with its file extension stripped.
	// It becomes the series/column label downstream.
	Name string

	// Points holds the measurements in file order.
	Points []Point
}
