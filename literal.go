package zview

import "unsafe"

// Lit returns a view over a string literal that spells out its own
// terminator:
//
//	var greeting = zview.Lit("hello\x00")
//
// The view shares the literal's memory, so nothing is copied. Lit panics
// if s does not end in a NUL byte.
func Lit(s string) ZStringView {
	return narrowLit[byte]("Lit", s)
}

// U8Lit is Lit for UTF-8 code units.
func U8Lit(s string) U8ZStringView {
	return narrowLit[Char8]("U8Lit", s)
}

// U16Lit returns a terminated UTF-16 view of the literal s, which must not
// contain NUL. The units are built once per call, so keep the result in a
// package-level variable:
//
//	var title = zview.U16Lit("Settings")
func U16Lit(s string) U16ZStringView {
	return wideLit[uint16]("U16Lit", s)
}

// U32Lit is U16Lit for UTF-32 code units.
func U32Lit(s string) U32ZStringView {
	return wideLit[rune]("U32Lit", s)
}

// WLit is U16Lit for the platform wide character.
func WLit(s string) WZStringView {
	return wideLit[WChar]("WLit", s)
}

func narrowLit[T ~uint8](op, s string) View[T] {
	if len(s) == 0 || s[len(s)-1] != 0 {
		violated(`%s: literal %q must end with "\x00"`, op, s)
	}
	return View[T]{z: unsafe.Slice((*T)(unsafe.Pointer(unsafe.StringData(s))), len(s))}
}

func wideLit[T Char](op, s string) View[T] {
	buf, err := terminate[T](s)
	if err != nil {
		violated("%s: literal %q: %v", op, s, err)
	}
	return View[T]{z: buf}
}
