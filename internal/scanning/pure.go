package scanning

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dslipak/pdf"
)

// Pure implements the Scanner interface with a pure Go PDF reader.
// It needs no C toolchain but copes with fewer font encodings than Fitz.
type Pure struct{}

// NewPure creates a new Pure Scanner instance
func NewPure() (*Pure, error) {
	return &Pure{}, nil
}

// ScanText extracts the text of every page of the PDF read from r
func (p *Pure) ScanText(r io.Reader) (string, error) {
	return scanWith(r, openPure)
}

// Close is a no-op
func (p *Pure) Close() error {
	return nil
}

// pureDocument adapts pdf.Reader to Document
type pureDocument struct {
	reader *pdf.Reader
}

func openPure(data []byte) (Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	return &pureDocument{reader: reader}, nil
}

func (d *pureDocument) NumPage() int {
	return d.reader.NumPage()
}

// Text returns the plain text of a page; pdf.Reader numbers pages from 1
func (d *pureDocument) Text(page int) (string, error) {
	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

// Close is a no-op, the reader holds no resources beyond the byte slice
func (d *pureDocument) Close() error {
	return nil
}
