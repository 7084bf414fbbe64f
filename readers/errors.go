package readers

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrExtractionFailed  = errors.New("failed to extract document text")
)

// ExtractionError is returned when a reader accepted the format but could not
// read the document.
type ExtractionError struct {
	File string
	Ext  string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %v", ErrExtractionFailed, e.File, e.Ext, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}
