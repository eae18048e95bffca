package atomicbits

import (
	"errors"
	"fmt"
)

var (
	// ErrBitIndexOutOfRange matches every *BitIndexError via errors.Is.
	ErrBitIndexOutOfRange = errors.New("bit index out of range")

	// ErrWidthUnavailable is returned when a width is not built for the target.
	ErrWidthUnavailable = errors.New("atomic width unavailable on this target")
)

// BitIndexError reports a bit index outside [0, Len).
//
// Bit operations panic with a *BitIndexError before touching the word.
// CheckBit returns the same value for callers that validate up front.
type BitIndexError struct {
	Bit int
	Len int
}

func (e *BitIndexError) Error() string {
	return fmt.Sprintf("atomicbits: bit index %d out of range [0, %d)", e.Bit, e.Len)
}

// Is reports whether target is ErrBitIndexOutOfRange.
func (e *BitIndexError) Is(target error) bool { return target == ErrBitIndexOutOfRange }

// CheckBit validates bit against the width of T without panicking.
//
// Use it for indices that come from untrusted or dynamic sources. The index
// is never masked or wrapped.
func CheckBit[T Integer](bit int) error {
	if n := BitLen[T](); bit < 0 || bit >= n {
		return &BitIndexError{Bit: bit, Len: n}
	}
	return nil
}
