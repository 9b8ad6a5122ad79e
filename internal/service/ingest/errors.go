package ingest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyFile      = errors.New("file has no data rows")
	ErrMissingHeaders = errors.New("missing required headers")
	ErrNoValidRows    = errors.New("no valid rows")
	ErrUnreadable     = errors.New("file cannot be read")
)

// MissingHeadersError lists the required columns absent from a header row.
type MissingHeadersError struct {
	Missing  []string
	Required []string
	Optional []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("%s: %s (required: %s; optional: %s)",
		ErrMissingHeaders,
		strings.Join(e.Missing, ", "),
		strings.Join(e.Required, ", "),
		strings.Join(e.Optional, ", "),
	)
}

func (e *MissingHeadersError) Is(target error) bool {
	return target == ErrMissingHeaders
}
