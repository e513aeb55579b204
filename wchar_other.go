//go:build !windows

package zview

// WChar is the platform wide character, a signed 32-bit unit outside
// Windows.
type WChar int32
