//go:build !zviewunchecked

package zview

// checked enables the precondition checks in constructors, Index, Front,
// Back and RemovePrefix. Build with -tags zviewunchecked to drop them.
const checked = true
