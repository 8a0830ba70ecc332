package main

import (
	"os"

	xterm "golang.org/x/term"
)

// isTerminal reports whether both stdin and stdout are terminals.
func isTerminal() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd())) && xterm.IsTerminal(int(os.Stdout.Fd()))
}
