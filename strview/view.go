// Package strview provides View, a non-owning read-only window over a
// contiguous run of character units of any supported width.
package strview

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/spaolacci/murmur3"
)

// Char is the set of character unit types a View can hold: 8-bit units,
// UTF-16 code units, and 32-bit units (runes or platform wide characters).
type Char interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// NPos is returned by the find family when nothing matches. As the pos
// argument of a reverse search it means "start from the end".
const NPos = -1

// A View holds a read-only view of character units.
//
// A View is meant to be used as a value type, not a pointer (like a
// time.Time). It never owns the units it covers: whoever owns them must
// keep them alive and unmodified while any View over them is in use.
type View[T Char] struct {
	units []T
}

// Of returns a view over units. The units are not copied.
func Of[T Char](units []T) View[T] {
	return View[T]{units: units[:len(units):len(units)]}
}

// FromString returns a view over the bytes of s without copying them.
func FromString(s string) View[byte] {
	return View[byte]{units: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Clone returns a view over a fresh copy of v's units.
func (v View[T]) Clone() View[T] {
	return View[T]{units: slices.Clone(v.units)}
}

// Len returns the number of units in the view.
func (v View[T]) Len() int {
	return len(v.units)
}

// Empty reports whether the view has no units.
func (v View[T]) Empty() bool {
	return len(v.units) == 0
}

// Index returns the unit at i without a bounds check of its own.
func (v View[T]) Index(i int) T {
	return v.units[i]
}

// At returns the unit at i, or a *RangeError when i is outside [0, Len()).
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.units) {
		var zero T
		return zero, &RangeError{Op: "strview.At", Pos: i, Len: len(v.units)}
	}
	return v.units[i], nil
}

// Front returns the first unit. It panics on an empty view.
func (v View[T]) Front() T {
	if len(v.units) == 0 {
		panic("strview: Front on empty view")
	}
	return v.units[0]
}

// Back returns the last unit. It panics on an empty view.
func (v View[T]) Back() T {
	if len(v.units) == 0 {
		panic("strview: Back on empty view")
	}
	return v.units[len(v.units)-1]
}

// Units returns the underlying units. The caller must not modify them.
func (v View[T]) Units() []T {
	return v.units
}

// Bytes returns the in-memory bytes of the units, in host byte order,
// without copying. The caller must not modify them.
func (v View[T]) Bytes() []byte {
	if len(v.units) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v.units))), len(v.units)*int(unsafe.Sizeof(zero)))
}

// All returns an iterator over index-unit pairs in order.
func (v View[T]) All() iter.Seq2[int, T] {
	return slices.All(v.units)
}

// Backward returns an iterator over index-unit pairs from the last unit
// to the first.
func (v View[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(v.units)
}

// Substr returns the view of at most n units starting at pos. A negative
// n (such as NPos) extends to the end. It fails if pos > Len().
func (v View[T]) Substr(pos, n int) (View[T], error) {
	return v.substr("strview.Substr", pos, n)
}

func (v View[T]) substr(op string, pos, n int) (View[T], error) {
	if pos < 0 || pos > len(v.units) {
		return View[T]{}, &RangeError{Op: op, Pos: pos, Len: len(v.units)}
	}
	rest := len(v.units) - pos
	if n < 0 || n > rest {
		n = rest
	}
	return View[T]{units: v.units[pos : pos+n : pos+n]}, nil
}

// Copy copies the units starting at pos into dst and returns the number
// of units copied. It fails if pos > Len().
func (v View[T]) Copy(dst []T, pos int) (int, error) {
	if pos < 0 || pos > len(v.units) {
		return 0, &RangeError{Op: "strview.Copy", Pos: pos, Len: len(v.units)}
	}
	return copy(dst, v.units[pos:]), nil
}

// Compare returns -1, 0 or +1 comparing v and s unit by unit. A view that
// is a proper prefix of the other sorts first.
func (v View[T]) Compare(s View[T]) int {
	return slices.Compare(v.units, s.units)
}

// CompareSub compares the substring (pos1, n1) of v with the substring
// (pos2, n2) of s. Positions follow the rules of Substr.
func (v View[T]) CompareSub(pos1, n1 int, s View[T], pos2, n2 int) (int, error) {
	a, err := v.substr("strview.CompareSub", pos1, n1)
	if err != nil {
		return 0, err
	}
	b, err := s.substr("strview.CompareSub", pos2, n2)
	if err != nil {
		return 0, err
	}
	return a.Compare(b), nil
}

// Equal reports whether v and s hold the same units.
func (v View[T]) Equal(s View[T]) bool {
	return slices.Equal(v.units, s.units)
}

// Less reports whether v sorts before s.
func (v View[T]) Less(s View[T]) bool {
	return v.Compare(s) < 0
}

// HasPrefix reports whether v begins with s.
func (v View[T]) HasPrefix(s View[T]) bool {
	return len(v.units) >= len(s.units) && slices.Equal(v.units[:len(s.units)], s.units)
}

// HasPrefixUnit reports whether v begins with c.
func (v View[T]) HasPrefixUnit(c T) bool {
	return len(v.units) > 0 && v.units[0] == c
}

// HasSuffix reports whether v ends with s.
func (v View[T]) HasSuffix(s View[T]) bool {
	return len(v.units) >= len(s.units) && slices.Equal(v.units[len(v.units)-len(s.units):], s.units)
}

// HasSuffixUnit reports whether v ends with c.
func (v View[T]) HasSuffixUnit(c T) bool {
	return len(v.units) > 0 && v.units[len(v.units)-1] == c
}

// Contains reports whether s occurs within v.
func (v View[T]) Contains(s View[T]) bool {
	return v.Find(s, 0) != NPos
}

// ContainsUnit reports whether c occurs within v.
func (v View[T]) ContainsUnit(c T) bool {
	return slices.Contains(v.units, c)
}

// Hash returns a hash of v's units. Views holding the same units hash
// the same no matter which buffer backs them.
func (v View[T]) Hash() uint64 {
	return murmur3.Sum64(v.Bytes())
}

// String returns the units as a UTF-8 Go string. One-byte units are copied
// verbatim, two-byte units are decoded as UTF-16 and four-byte units as
// runes. Ill-formed sequences become utf8.RuneError; nothing is validated.
func (v View[T]) String() string {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return string(v.Bytes())
	case 2:
		buf := make([]byte, 0, len(v.units))
		for i := 0; i < len(v.units); i++ {
			r := rune(v.units[i])
			if utf16.IsSurrogate(r) && i+1 < len(v.units) {
				if d := utf16.DecodeRune(r, rune(v.units[i+1])); d != utf8.RuneError {
					r = d
					i++
				}
			}
			buf = utf8.AppendRune(buf, r)
		}
		return string(buf)
	default:
		buf := make([]byte, 0, len(v.units))
		for _, c := range v.units {
			buf = utf8.AppendRune(buf, rune(c))
		}
		return string(buf)
	}
}

// Format implements fmt.Formatter. The view formats like its String value,
// so width, precision, flags and verbs such as %q and %x all apply.
func (v View[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.String())
}

// WriteTo implements io.WriterTo by writing the UTF-8 rendition of v.
func (v View[T]) WriteTo(w io.Writer) (int64, error) {
	var zero T
	if unsafe.Sizeof(zero) == 1 {
		n, err := w.Write(v.Bytes())
		return int64(n), err
	}
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}
