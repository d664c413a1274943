package scanning

import (
	"fmt"
	"io"
)

// Document is an opened, paginated PDF
type Document interface {
	// NumPage returns the number of pages in the document
	NumPage() int
	// Text returns the plain text of a page (0-based)
	Text(page int) (string, error)
	// Close releases the document
	Close() error
}

// Scanner defines the interface for statement text extraction
type Scanner interface {
	// ScanText reads a PDF from r and returns the text of all its pages
	ScanText(r io.Reader) (string, error)
	// Close closes the scanner and releases resources
	Close() error
}

// DocumentReadError is returned when a statement cannot be opened as a PDF
type DocumentReadError struct {
	Err error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("reading document: %v", e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// Backend names accepted by New
const (
	BackendFitz = "fitz"
	BackendPure = "pure"
)

// New creates the Scanner for the named backend
func New(backend string) (Scanner, error) {
	switch backend {
	case BackendFitz:
		return NewFitz()
	case BackendPure:
		return NewPure()
	default:
		return nil, fmt.Errorf("unknown scanner backend %q (valid: %s or %s)", backend, BackendFitz, BackendPure)
	}
}
