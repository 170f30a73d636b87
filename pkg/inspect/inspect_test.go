package inspect

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specplot/specplot/pkg/spectrum"
)

func TestInspect_UsableFile(t *testing.T) {
	in := New()

	content := "Instrument X\nSerial 123\nWavelength (nm),Absorbance\n400,0.1\n410,0.2\nfooter\n"
	result := in.Inspect(spectrum.Upload{Name: "good.txt", Data: []byte(content)})

	if !result.Usable() {
		t.Fatalf("Usable() = false: %+v", result)
	}
	if result.Encoding != "gbk" {
		// ASCII bytes are valid GBK, and GBK is first in the default order.
		t.Errorf("Encoding = %q, want gbk", result.Encoding)
	}
	if result.HeaderLine != 3 {
		t.Errorf("HeaderLine = %d, want 3", result.HeaderLine)
	}
	if result.HeaderToken != "wavelength" {
		t.Errorf("HeaderToken = %q, want wavelength", result.HeaderToken)
	}
	if result.ValidRows != 2 {
		t.Errorf("ValidRows = %d, want 2", result.ValidRows)
	}
	if result.XMin != 400 || result.XMax != 410 {
		t.Errorf("X range = %g..%g, want 400..410", result.XMin, result.XMax)
	}
	if result.SampleRow != "400,0.1" {
		t.Errorf("SampleRow = %q", result.SampleRow)
	}
}

func TestInspect_CountsSkippedRows(t *testing.T) {
	in := New()

	content := "wavelength,abs\n400,0.1\ngarbage line\n410,0.2"
	result := in.Inspect(spectrum.Upload{Name: "noisy.txt", Data: []byte(content)})

	if result.ValidRows != 2 {
		t.Errorf("ValidRows = %d, want 2", result.ValidRows)
	}
	if result.SkippedRows != 1 {
		t.Errorf("SkippedRows = %d, want 1", result.SkippedRows)
	}
}

func TestInspect_NoHeader(t *testing.T) {
	in := New()

	result := in.Inspect(spectrum.Upload{Name: "raw.txt", Data: []byte("400,0.1\n410,0.2\n")})

	if !result.Decoded() {
		t.Error("Decoded() = false, want true")
	}
	if result.HeaderFound() {
		t.Error("HeaderFound() = true, want false")
	}
	if result.Usable() {
		t.Error("Usable() = true, want false")
	}
}

func TestInspect_UndecodableFile(t *testing.T) {
	in := New()

	result := in.Inspect(spectrum.Upload{Name: "bin.dat", Data: []byte{0x81, 0x20, 0x00, 0xd8}})

	if result.Decoded() {
		t.Errorf("Decoded() = true for undecodable bytes (encoding %q)", result.Encoding)
	}
	if result.Usable() {
		t.Error("Usable() = true, want false")
	}
}

func TestInspect_CustomTokens(t *testing.T) {
	in := New(WithHeaderTokens([]string{"lambda"}))

	result := in.Inspect(spectrum.Upload{Name: "l.txt", Data: []byte("LAMBDA,abs\n400,0.1\n")})

	if !result.HeaderFound() {
		t.Fatal("HeaderFound() = false with custom token")
	}
	if result.HeaderToken != "lambda" {
		t.Errorf("HeaderToken = %q, want lambda", result.HeaderToken)
	}
}

func TestInspectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("wavelength,abs\n400,0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := New().InspectFile(context.Background(), path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if result.File != "sample.txt" {
		t.Errorf("File = %q, want base name", result.File)
	}
	if !result.Usable() {
		t.Errorf("Usable() = false: %+v", result)
	}
}

func TestInspectFile_Missing(t *testing.T) {
	if _, err := New().InspectFile(context.Background(), "/nonexistent/f.txt"); err == nil {
		t.Error("InspectFile() succeeded for missing file")
	}
}
