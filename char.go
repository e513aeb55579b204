package zview

import "zview/strview"

// Char is the set of character unit types a View can hold.
type Char = strview.Char

// Char8 is a UTF-8 code unit, kept distinct from byte so that views of
// UTF-8 text and views of arbitrary narrow text are different types.
type Char8 uint8

// Views for each supported character width.
type (
	ZStringView    = View[byte]
	U8ZStringView  = View[Char8]
	U16ZStringView = View[uint16]
	U32ZStringView = View[rune]
	WZStringView   = View[WChar]
)
