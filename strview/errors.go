package strview

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError through errors.Is.
var ErrOutOfRange = errors.New("position out of range")

// RangeError reports a checked access or slicing position outside the
// valid range of a view.
type RangeError struct {
	// Op is the operation that rejected the position, e.g. "strview.Substr".
	Op string

	// Pos is the offending position.
	Pos int

	// Len is the length of the view at the time of the call.
	Len int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: pos (%d) out of range for size %d", e.Op, e.Pos, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
