//go:build windows

package zview

// WChar is the platform wide character, a UTF-16 code unit on Windows.
type WChar uint16
