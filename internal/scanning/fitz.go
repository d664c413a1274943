package scanning

import (
	"fmt"
	"io"

	"github.com/gen2brain/go-fitz"
)

// Fitz implements the Scanner interface using MuPDF
type Fitz struct{}

// NewFitz creates a new Fitz Scanner instance
func NewFitz() (*Fitz, error) {
	return &Fitz{}, nil
}

// ScanText extracts the text of every page of the PDF read from r
func (f *Fitz) ScanText(r io.Reader) (string, error) {
	return scanWith(r, openFitz)
}

// Close is a no-op, documents are closed after each scan
func (f *Fitz) Close() error {
	return nil
}

func openFitz(data []byte) (Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	return doc, nil
}
