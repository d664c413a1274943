package statement

import (
	"errors"
	"fmt"
)

// ErrNoStatement means no statement was supplied; callers show the budget only
var ErrNoStatement = errors.New("no statement supplied")

// ParseError is returned when the parser input is not usable text
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing statement text: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
