//go:build zviewunchecked

package zview

const checked = false
