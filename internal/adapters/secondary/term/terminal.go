package term

import (
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// Device abstracts the raw terminal an ANSISurface draws on: raw mode
// transitions, size queries, and output writing.
type Device interface {
	io.Writer
	MakeRaw() error
	Restore() error
	Size() (rows, cols int, err error)
}

// TTY is the Device backed by the process's controlling terminal.
type TTY struct {
	in    *os.File
	out   *os.File
	state *xterm.State
}

// NewTTY returns a TTY over stdin/stdout.
func NewTTY() *TTY {
	return &TTY{in: os.Stdin, out: os.Stdout}
}

// MakeRaw puts the terminal into raw mode, remembering the prior state.
func (t *TTY) MakeRaw() error {
	state, err := xterm.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Restore returns the terminal to the state captured by MakeRaw. It is
// a no-op when raw mode was never entered.
func (t *TTY) Restore() error {
	if t.state == nil {
		return nil
	}
	if err := xterm.Restore(int(t.in.Fd()), t.state); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	t.state = nil
	return nil
}

// Size returns the terminal dimensions.
func (t *TTY) Size() (rows, cols int, err error) {
	cols, rows, err = xterm.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("querying terminal size: %w", err)
	}
	return rows, cols, nil
}

// Write writes raw bytes to the terminal.
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
