package term

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of the goroutine that
// owns the surface. On panic it releases the terminal, prints the panic
// value and stack trace, then exits with code 1. Without it a panic
// would leave the terminal in raw mode on the alternate screen.
func RestoreOnPanic(s *ANSISurface) {
	r := recover()
	if r == nil {
		return
	}

	_ = s.Close()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
