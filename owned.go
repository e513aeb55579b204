package zview

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// ErrContainsNUL is returned when a Go string cannot be terminated
// because it already holds a NUL character.
var ErrContainsNUL = errors.New("string contains a NUL character")

// CString returns a view over a newly allocated, terminated copy of s.
// The copy is owned by the garbage collector and lives as long as any
// view over it. It fails with ErrContainsNUL if s holds a NUL byte.
func CString(s string) (ZStringView, error) {
	return ownedView[byte]("CString", s)
}

// U8String is like CString for UTF-8 code units.
func U8String(s string) (U8ZStringView, error) {
	return ownedView[Char8]("U8String", s)
}

// U16String returns a view over s encoded as terminated UTF-16.
func U16String(s string) (U16ZStringView, error) {
	return ownedView[uint16]("U16String", s)
}

// U32String returns a view over the runes of s, terminated.
func U32String(s string) (U32ZStringView, error) {
	return ownedView[rune]("U32String", s)
}

// WString returns a view over s encoded in the platform wide character.
func WString(s string) (WZStringView, error) {
	return ownedView[WChar]("WString", s)
}

func ownedView[T Char](op, s string) (View[T], error) {
	buf, err := terminate[T](s)
	if err != nil {
		return View[T]{}, fmt.Errorf("zview: %s: %w", op, err)
	}
	return FromTerminated(buf), nil
}

// terminate encodes s in units of T and appends the terminator.
func terminate[T Char](s string) ([]T, error) {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		b, err := terminateBytes(s)
		if err != nil {
			return nil, err
		}
		return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)), nil
	case 2:
		if strings.IndexByte(s, 0) >= 0 {
			return nil, ErrContainsNUL
		}
		buf := make([]T, 0, len(s)+1)
		for _, r := range s {
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
				buf = append(buf, T(r1), T(r2))
				continue
			}
			buf = append(buf, T(r))
		}
		return append(buf, 0), nil
	default:
		if strings.IndexByte(s, 0) >= 0 {
			return nil, ErrContainsNUL
		}
		buf := make([]T, 0, utf8.RuneCountInString(s)+1)
		for _, r := range s {
			buf = append(buf, T(r))
		}
		return append(buf, 0), nil
	}
}
