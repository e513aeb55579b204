package zview

import "fmt"

// violated reports a broken precondition. Checks that cost extra are
// guarded by the checked constant at the call site.
func violated(format string, args ...any) {
	panic("zview: " + fmt.Sprintf(format, args...))
}
