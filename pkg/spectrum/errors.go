package spectrum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeader indicates the header scan exhausted the file without
// finding any header token.
var ErrNoHeader = errors.New("no header line found")

// ErrNoData indicates a header was found but no valid data rows followed.
var ErrNoData = errors.New("no valid data rows")

// DecodeError indicates that no candidate encoding decoded the file.
type DecodeError struct {
	// Tried lists the candidate encoding names, in the order attempted.
	Tried []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("no candidate encoding matched (tried %s)", strings.Join(e.Tried, ", "))
}

// FileError associates a parse failure with the upload it came from.
// A FileError excludes that file from the batch; it never aborts the
// remaining files.
type FileError struct {
	// Name is the upload name as supplied.
	Name string

	// Err is the underlying failure.
	Err error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As matching.
func (e *FileError) Unwrap() error {
	return e.Err
}
