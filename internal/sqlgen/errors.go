package sqlgen

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrMalformedLiteral = errors.New("malformed string literal")
	ErrMalformedInsert  = errors.New("malformed insert statement")
	ErrVerifyMismatch   = errors.New("emitted rows do not match generated rows")
)

// Error provides detailed error information
type Error struct {
	Op   string // Operation that failed
	Path string // Output file (if applicable)
	Row  int    // Row id (if applicable)
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("sqlgen: %s", e.Op))

	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}

	if e.Row != 0 {
		parts = append(parts, fmt.Sprintf("row=%d", e.Row))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for Error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return errors.Is(e.Err, target)
	}

	if t.Op != "" && e.Op == t.Op {
		return true
	}

	return errors.Is(e.Err, t.Err)
}
