package boilerpy

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned by the parse adaptors when the input has no
// body, or produced no tokens after the final flush. It is not a failure:
// callers may treat it as "empty content string" and continue.
var ErrEmptyDocument = errors.New("boilerpy: empty document")

// ParseError wraps a tokenizer failure that survived the single
// script-blanking retry (see ParseReader). Err is the underlying tokenizer
// error.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("boilerpy: parse failed: %s", e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
