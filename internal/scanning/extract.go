package scanning

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// opener turns raw PDF bytes into a Document
type opener func(data []byte) (Document, error)

// scanWith reads r, opens it with open and returns the concatenated page text.
// The document is always closed before returning.
func scanWith(r io.Reader, open opener) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &DocumentReadError{Err: fmt.Errorf("reading input: %w", err)}
	}
	if len(data) == 0 {
		return "", &DocumentReadError{Err: fmt.Errorf("empty input")}
	}

	doc, err := open(data)
	if err != nil {
		return "", &DocumentReadError{Err: err}
	}
	defer doc.Close()

	return joinPages(doc), nil
}

// joinPages writes the text of every page followed by a newline.
// Pages without extractable text contribute only the newline.
func joinPages(doc Document) string {
	var text strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			slog.Warn("Failed to extract page text, treating as empty", "page", i+1, "error", err)
			pageText = ""
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String()
}
