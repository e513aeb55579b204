package zview

import (
	"fmt"
	"io"
	"iter"

	"zview/strview"
)

// All returns an iterator over index-unit pairs. The terminator is not
// included.
func (v View[T]) All() iter.Seq2[int, T] { return v.StrView().All() }

// Backward returns an iterator over index-unit pairs from the last unit
// to the first. The terminator is not included.
func (v View[T]) Backward() iter.Seq2[int, T] { return v.StrView().Backward() }

// Substr returns the plain view of at most n units starting at pos. The
// result is not terminated in general, so it is a strview.View.
func (v View[T]) Substr(pos, n int) (strview.View[T], error) {
	return v.StrView().Substr(pos, n)
}

// Copy copies the units starting at pos into dst; see strview.View.Copy.
func (v View[T]) Copy(dst []T, pos int) (int, error) { return v.StrView().Copy(dst, pos) }

// Compare compares v with s unit by unit; see strview.View.Compare.
func (v View[T]) Compare(s strview.View[T]) int { return v.StrView().Compare(s) }

// CompareSub compares substrings of v and s; see strview.View.CompareSub.
func (v View[T]) CompareSub(pos1, n1 int, s strview.View[T], pos2, n2 int) (int, error) {
	return v.StrView().CompareSub(pos1, n1, s, pos2, n2)
}

// Equal reports whether v and s hold the same units.
func (v View[T]) Equal(s strview.View[T]) bool { return v.StrView().Equal(s) }

func (v View[T]) HasPrefix(s strview.View[T]) bool { return v.StrView().HasPrefix(s) }
func (v View[T]) HasPrefixUnit(c T) bool           { return v.StrView().HasPrefixUnit(c) }
func (v View[T]) HasSuffix(s strview.View[T]) bool { return v.StrView().HasSuffix(s) }
func (v View[T]) HasSuffixUnit(c T) bool           { return v.StrView().HasSuffixUnit(c) }
func (v View[T]) Contains(s strview.View[T]) bool  { return v.StrView().Contains(s) }
func (v View[T]) ContainsUnit(c T) bool            { return v.StrView().ContainsUnit(c) }

// Find and the rest of the search family return a unit index or
// strview.NPos, exactly as the strview.View methods of the same name.
func (v View[T]) Find(s strview.View[T], pos int) int  { return v.StrView().Find(s, pos) }
func (v View[T]) FindUnit(c T, pos int) int            { return v.StrView().FindUnit(c, pos) }
func (v View[T]) RFind(s strview.View[T], pos int) int { return v.StrView().RFind(s, pos) }
func (v View[T]) RFindUnit(c T, pos int) int           { return v.StrView().RFindUnit(c, pos) }

func (v View[T]) FindFirstOf(s strview.View[T], pos int) int {
	return v.StrView().FindFirstOf(s, pos)
}

func (v View[T]) FindLastOf(s strview.View[T], pos int) int {
	return v.StrView().FindLastOf(s, pos)
}

func (v View[T]) FindFirstNotOf(s strview.View[T], pos int) int {
	return v.StrView().FindFirstNotOf(s, pos)
}

func (v View[T]) FindFirstNotOfUnit(c T, pos int) int {
	return v.StrView().FindFirstNotOfUnit(c, pos)
}

func (v View[T]) FindLastNotOf(s strview.View[T], pos int) int {
	return v.StrView().FindLastNotOf(s, pos)
}

func (v View[T]) FindLastNotOfUnit(c T, pos int) int {
	return v.StrView().FindLastNotOfUnit(c, pos)
}

// Compare returns -1, 0 or +1 comparing the units of a and b. It orders
// views the same way strview.View.Compare orders their plain forms, so it
// can be passed to slices.SortFunc.
func Compare[T Char](a, b View[T]) int {
	return a.StrView().Compare(b.StrView())
}

// Equal reports whether a and b hold the same units. Where the units live
// and which terminator follows them does not matter.
func Equal[T Char](a, b View[T]) bool {
	return a.StrView().Equal(b.StrView())
}

// Hash returns the same value as v.StrView().Hash(), so terminated and
// plain views over equal units can share a hashed container.
func (v View[T]) Hash() uint64 { return v.StrView().Hash() }

// String returns the units as a UTF-8 Go string; see strview.View.String.
func (v View[T]) String() string { return v.StrView().String() }

// Format implements fmt.Formatter with the formatting of strview.View.
func (v View[T]) Format(state fmt.State, verb rune) { v.StrView().Format(state, verb) }

// WriteTo implements io.WriterTo; the terminator is not written.
func (v View[T]) WriteTo(w io.Writer) (int64, error) { return v.StrView().WriteTo(w) }
