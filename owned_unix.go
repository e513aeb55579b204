//go:build unix

package zview

import "golang.org/x/sys/unix"

func terminateBytes(s string) ([]byte, error) {
	b, err := unix.ByteSliceFromString(s)
	if err != nil {
		return nil, ErrContainsNUL
	}
	return b, nil
}
