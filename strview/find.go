package strview

import "slices"

// Find returns the index of the first occurrence of s in v at or after
// pos, or NPos. An empty s is found at pos whenever pos <= Len().
func (v View[T]) Find(s View[T], pos int) int {
	n, m := len(v.units), len(s.units)
	if pos < 0 || pos > n || m > n-pos {
		return NPos
	}
	if m == 0 {
		return pos
	}
	first := s.units[0]
	for i := pos; i <= n-m; {
		j := slices.Index(v.units[i:n-m+1], first)
		if j < 0 {
			return NPos
		}
		i += j
		if slices.Equal(v.units[i:i+m], s.units) {
			return i
		}
		i++
	}
	return NPos
}

// FindUnit returns the index of the first c in v at or after pos, or NPos.
func (v View[T]) FindUnit(c T, pos int) int {
	if pos < 0 || pos >= len(v.units) {
		return NPos
	}
	if i := slices.Index(v.units[pos:], c); i >= 0 {
		return pos + i
	}
	return NPos
}

// RFind returns the index of the last occurrence of s in v that starts at
// or before pos, or NPos. A negative pos searches from the end.
func (v View[T]) RFind(s View[T], pos int) int {
	n, m := len(v.units), len(s.units)
	if m > n {
		return NPos
	}
	for i := lastStart(pos, n-m); i >= 0; i-- {
		if slices.Equal(v.units[i:i+m], s.units) {
			return i
		}
	}
	return NPos
}

// RFindUnit returns the index of the last c in v at or before pos, or NPos.
func (v View[T]) RFindUnit(c T, pos int) int {
	for i := lastStart(pos, len(v.units)-1); i >= 0; i-- {
		if v.units[i] == c {
			return i
		}
	}
	return NPos
}

// FindFirstOf returns the index of the first unit at or after pos that is
// one of the units of s, or NPos. For a single unit use FindUnit.
func (v View[T]) FindFirstOf(s View[T], pos int) int {
	return v.scanForward(pos, func(c T) bool { return slices.Contains(s.units, c) })
}

// FindLastOf returns the index of the last unit at or before pos that is
// one of the units of s, or NPos. For a single unit use RFindUnit.
func (v View[T]) FindLastOf(s View[T], pos int) int {
	return v.scanBackward(pos, func(c T) bool { return slices.Contains(s.units, c) })
}

// FindFirstNotOf returns the index of the first unit at or after pos that
// is none of the units of s, or NPos.
func (v View[T]) FindFirstNotOf(s View[T], pos int) int {
	return v.scanForward(pos, func(c T) bool { return !slices.Contains(s.units, c) })
}

// FindFirstNotOfUnit returns the index of the first unit at or after pos
// that differs from c, or NPos.
func (v View[T]) FindFirstNotOfUnit(c T, pos int) int {
	return v.scanForward(pos, func(u T) bool { return u != c })
}

// FindLastNotOf returns the index of the last unit at or before pos that
// is none of the units of s, or NPos.
func (v View[T]) FindLastNotOf(s View[T], pos int) int {
	return v.scanBackward(pos, func(c T) bool { return !slices.Contains(s.units, c) })
}

// FindLastNotOfUnit returns the index of the last unit at or before pos
// that differs from c, or NPos.
func (v View[T]) FindLastNotOfUnit(c T, pos int) int {
	return v.scanBackward(pos, func(u T) bool { return u != c })
}

func (v View[T]) scanForward(pos int, match func(T) bool) int {
	if pos < 0 {
		return NPos
	}
	for i := pos; i < len(v.units); i++ {
		if match(v.units[i]) {
			return i
		}
	}
	return NPos
}

func (v View[T]) scanBackward(pos int, match func(T) bool) int {
	for i := lastStart(pos, len(v.units)-1); i >= 0; i-- {
		if match(v.units[i]) {
			return i
		}
	}
	return NPos
}

// lastStart clamps the starting index of a reverse search to limit.
func lastStart(pos, limit int) int {
	if pos < 0 || pos > limit {
		return limit
	}
	return pos
}
