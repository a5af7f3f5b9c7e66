package position

import "github.com/pkg/errors"

// checkf panics with a stack-trace-carrying error if cond is false.
// The core uses preconditions, not recoverable errors: an illegal
// move, an out-of-range coordinate, a re-entered visitor, or a
// group-pool exhaustion are all programming errors, never data the
// caller is expected to recover from. See DESIGN.md for why this
// panics instead of returning error.
func checkf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Errorf(format, args...))
	}
}
