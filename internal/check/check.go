//go:build !raggofast

package check

import "fmt"

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// Failf panics with a formatted diagnostic. Only reachable when checks
// are enabled; callers guard with Enabled so the arguments are not
// evaluated in fast builds.
func Failf(format string, args ...any) {
	panic(fmt.Sprintf("raggo: "+format, args...))
}
