package league

import "strings"

// lpad left-pads s with spaces to len n.
func lpad(s string, n int) string {
	if len(s) < n {
		return strings.Repeat(" ", n-len(s)) + s
	}
	return s
}

// rpad right-pads s with spaces to len n.
func rpad(s string, n int) string {
	if len(s) < n {
		return s + strings.Repeat(" ", n-len(s))
	}
	return s
}
