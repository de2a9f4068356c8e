package splitter

import (
	"errors"
	"fmt"
)

// ErrExtraction matches every *ExtractionError.
var ErrExtraction = errors.New("audio extraction failed")

// ExtractionError reports which chapter could not be cut or encoded.
type ExtractionError struct {
	Index int
	Title string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("chapter %02d %q: %v: %v", e.Index, e.Title, ErrExtraction, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}
