// Package zview provides View, a read-only view of character units that
// is guaranteed to be followed in memory by a zero unit.
//
// A View can be handed to code that needs a terminated string, such as a
// cgo call or a system call taking a pointer to a NUL-terminated buffer,
// without copying. All search and comparison work is done by the plain,
// unterminated strview.View that every View converts to at no cost.
package zview

import (
	"slices"
	"unsafe"

	"zview/strview"
)

// A View holds a read-only view of character units followed by a
// terminator, the zero value of the unit type.
//
// A View is meant to be used as a value type, not a pointer (like a
// time.Time). The zero value is a valid empty view whose CStr still
// points at a terminator. A View never owns its units: the owner of the
// buffer must keep it alive and unmodified while any View over it is in
// use.
type View[T Char] struct {
	// z holds the units and the terminator, so len(z) == Len()+1.
	// It is nil only for the zero value.
	z []T
}

// terminator is the shared buffer behind zero-value views of every width.
// It is as large and as aligned as the widest unit.
var terminator [1]uint32

func emptyUnits[T Char]() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&terminator)), 1)
}

// New returns a view over the first n units of buf. buf[n] must be the
// terminator.
func New[T Char](buf []T, n int) View[T] {
	if checked {
		if buf == nil {
			violated("New: nil buffer")
		}
		if n < 0 || n >= len(buf) {
			violated("New: length %d leaves no room for a terminator in %d units", n, len(buf))
		}
		if buf[n] != 0 {
			violated("New: unit %d is %#x, not the terminator", n, buf[n])
		}
	}
	return View[T]{z: buf[: n+1 : n+1]}
}

// FromTerminated returns a view over buf, whose last unit must be the
// terminator.
func FromTerminated[T Char](buf []T) View[T] {
	return New(buf, len(buf)-1)
}

// Scan returns a view over buf up to its first terminator, in the manner
// of C's strlen. It panics if buf holds no terminator.
func Scan[T Char](buf []T) View[T] {
	n := slices.Index(buf, 0)
	if n < 0 {
		violated("Scan: no terminator in %d units", len(buf))
	}
	return View[T]{z: buf[: n+1 : n+1]}
}

// FromPtr returns a view over the terminated units starting at p, which
// typically comes from C. The memory up to and including the terminator
// must stay valid while the view is in use. FromPtr panics if p is nil.
func FromPtr[T Char](p *T) View[T] {
	if p == nil {
		violated("FromPtr: nil pointer")
	}
	size := unsafe.Sizeof(*p)
	n := 0
	for *(*T)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*size)) != 0 {
		n++
	}
	return View[T]{z: unsafe.Slice(p, n+1)}
}

// FromSlice returns a view over s for a buffer that keeps its terminator
// just past its length, inside its capacity: s[:len(s)+1][len(s)] must be
// zero. This is how owned buffers built by this package are laid out.
func FromSlice[T Char](s []T) View[T] {
	n := len(s)
	if checked && cap(s) <= n {
		violated("FromSlice: no room for a terminator past %d units", n)
	}
	return New(s[:n+1], n)
}

func (v View[T]) buf() []T {
	if v.z == nil {
		return emptyUnits[T]()
	}
	return v.z
}

// Len returns the number of units, not counting the terminator.
func (v View[T]) Len() int {
	if v.z == nil {
		return 0
	}
	return len(v.z) - 1
}

// Empty reports whether the view has no units.
func (v View[T]) Empty() bool {
	return v.Len() == 0
}

// At returns the unit at pos. Position Len() is valid and yields the
// terminator; anything outside [0, Len()] returns a *strview.RangeError.
func (v View[T]) At(pos int) (T, error) {
	if pos < 0 || pos > v.Len() {
		var zero T
		return zero, &strview.RangeError{Op: "zview.At", Pos: pos, Len: v.Len()}
	}
	return v.buf()[pos], nil
}

// Index returns the unit at pos, which must be in [0, Len()].
func (v View[T]) Index(pos int) T {
	if checked && (pos < 0 || pos > v.Len()) {
		violated("Index: pos %d out of range for size %d", pos, v.Len())
	}
	return v.buf()[pos]
}

// Front returns the first unit. The view must not be empty.
func (v View[T]) Front() T {
	if checked && v.Empty() {
		violated("Front on empty view")
	}
	return v.z[0]
}

// Back returns the last unit. The view must not be empty.
func (v View[T]) Back() T {
	if checked && v.Empty() {
		violated("Back on empty view")
	}
	return v.z[len(v.z)-2]
}

// StrView returns the plain view over the same units, without the
// terminator.
func (v View[T]) StrView() strview.View[T] {
	if v.z == nil {
		return strview.View[T]{}
	}
	return strview.Of(v.z[:len(v.z)-1])
}

// CStr returns a pointer to the first unit. The units it points at are
// terminated and must not be modified.
func (v View[T]) CStr() *T {
	return &v.buf()[0]
}

// Units returns the units without the terminator. The caller must not
// modify them.
func (v View[T]) Units() []T {
	return v.StrView().Units()
}

// Terminated returns the units followed by the terminator. The caller
// must not modify them.
func (v View[T]) Terminated() []T {
	return v.buf()
}

// RemovePrefix drops the first n units, which must be in [0, Len()]. The
// terminator is untouched, so the view stays terminated.
func (v *View[T]) RemovePrefix(n int) {
	if checked && (n < 0 || n > v.Len()) {
		violated("RemovePrefix: %d exceeds size %d", n, v.Len())
	}
	if n == 0 {
		return
	}
	v.z = v.z[n:]
}

// Swap exchanges the contents of v and o.
func (v *View[T]) Swap(o *View[T]) {
	v.z, o.z = o.z, v.z
}
