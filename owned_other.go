//go:build !unix

package zview

import "strings"

func terminateBytes(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrContainsNUL
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}
