package statement

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinName selects standard input as the statement source
const StdinName = "-"

// OpenStatement opens the statement named by path. An empty path means no
// statement was supplied and yields ErrNoStatement; StdinName reads stdin.
// The caller must close the returned reader.
func OpenStatement(path string, stdin io.Reader) (io.ReadCloser, error) {
	path = strings.TrimSpace(path)
	switch path {
	case "":
		return nil, ErrNoStatement
	case StdinName:
		return io.NopCloser(stdin), nil
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return nil, fmt.Errorf("statement %s: unsupported file type %q, only PDF is accepted", path, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	return f, nil
}
