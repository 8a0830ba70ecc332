package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// ErrInputClosed is returned by ReadEvent when the input stream ends.
var ErrInputClosed = errors.New("terminal input closed")

// flashPulse is how long a single Flash keeps the screen inverted.
const flashPulse = 75 * time.Millisecond

// fallback geometry when the device cannot report its size
const (
	fallbackRows = 24
	fallbackCols = 80
)

// ANSISurface implements the Surface port over a raw-mode terminal
// device using ANSI escape sequences. Drawing is buffered until Flush.
// Writes beyond the surface bounds are clipped, never failed.
type ANSISurface struct {
	device Device
	input  io.Reader
	w      *bufio.Writer

	rows, cols int
	row, col   int

	events    chan entities.KeyEvent
	closeOnce sync.Once
	closeErr  error
	opened    bool
}

// NewANSISurface creates a surface over the given device, reading input
// events from input (normally the same terminal's stdin).
func NewANSISurface(device Device, input io.Reader) *ANSISurface {
	return &ANSISurface{
		device: device,
		input:  input,
		w:      bufio.NewWriterSize(device, 8192),
		events: make(chan entities.KeyEvent, 8),
	}
}

// Open acquires the terminal: raw mode, alternate screen, hidden
// cursor, cleared surface. It starts the input reader. Every Open must
// be paired with a deferred Close so the terminal is restored on all
// exit paths.
func (s *ANSISurface) Open() error {
	if err := s.device.MakeRaw(); err != nil {
		return err
	}

	rows, cols, err := s.device.Size()
	if err != nil || rows <= 0 || cols <= 0 {
		rows, cols = fallbackRows, fallbackCols
	}
	s.rows, s.cols = rows, cols

	s.w.WriteString("\x1b[?1049h") // alternate screen
	s.w.WriteString("\x1b[?25l")   // hide cursor
	s.w.WriteString("\x1b[2J\x1b[H")
	if err := s.w.Flush(); err != nil {
		_ = s.device.Restore()
		return fmt.Errorf("initializing surface: %w", err)
	}

	s.opened = true
	go s.readLoop()
	return nil
}

// Close releases the terminal: attributes reset, cursor shown, primary
// screen restored, raw mode exited. Safe to call more than once.
func (s *ANSISurface) Close() error {
	s.closeOnce.Do(func() {
		if !s.opened {
			s.closeErr = s.device.Restore()
			return
		}
		s.w.WriteString("\x1b[0m")
		s.w.WriteString("\x1b[?25h")   // show cursor
		s.w.WriteString("\x1b[?1049l") // primary screen
		if err := s.w.Flush(); err != nil {
			s.closeErr = fmt.Errorf("releasing surface: %w", err)
		}
		if err := s.device.Restore(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
	})
	return s.closeErr
}

// readLoop decodes input bytes into key events until the input ends.
func (s *ANSISurface) readLoop() {
	r := bufio.NewReader(s.input)
	for {
		ev, err := readKey(r)
		if err != nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

// Write draws text at the cursor, advancing it. Newlines move to the
// start of the next row; text past the right edge is clipped.
func (s *ANSISurface) Write(text string, attr ports.Attr) {
	prefix := sgr(attr)
	if prefix != "" {
		s.w.WriteString(prefix)
	}

	for _, r := range text {
		if r == '\n' {
			s.w.WriteString("\r\n")
			s.col = 0
			if s.row < s.rows-1 {
				s.row++
			}
			continue
		}

		w := runewidth.RuneWidth(r)
		if s.col+w > s.cols {
			continue
		}
		s.w.WriteRune(r)
		s.col += w
	}

	if prefix != "" {
		s.w.WriteString("\x1b[0m")
	}
}

// WriteAt moves the cursor to (row, col) and draws text there.
func (s *ANSISurface) WriteAt(row, col int, text string, attr ports.Attr) {
	s.MoveTo(row, col)
	s.Write(text, attr)
}

// MoveTo places the cursor, clamped to the surface bounds.
func (s *ANSISurface) MoveTo(row, col int) {
	s.row = clamp(row, 0, s.rows-1)
	s.col = clamp(col, 0, s.cols-1)
	fmt.Fprintf(s.w, "\x1b[%d;%dH", s.row+1, s.col+1)
}

// Clear erases the surface and homes the cursor.
func (s *ANSISurface) Clear() {
	s.w.WriteString("\x1b[2J\x1b[H")
	s.row, s.col = 0, 0
}

// Size returns the surface dimensions.
func (s *ANSISurface) Size() (rows, cols int) {
	return s.rows, s.cols
}

// SetCursorVisible shows or hides the cursor.
func (s *ANSISurface) SetCursorVisible(visible bool) {
	if visible {
		s.w.WriteString("\x1b[?25h")
	} else {
		s.w.WriteString("\x1b[?25l")
	}
}

// Flash inverts the whole surface for a short pulse.
func (s *ANSISurface) Flash() {
	s.w.WriteString("\x1b[?5h")
	_ = s.w.Flush()
	time.Sleep(flashPulse)
	s.w.WriteString("\x1b[?5l")
	_ = s.w.Flush()
}

// DeleteLine erases the row the cursor is on.
func (s *ANSISurface) DeleteLine() {
	s.w.WriteString("\x1b[2K")
}

// Flush pushes buffered drawing to the terminal.
func (s *ANSISurface) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flushing surface: %w", err)
	}
	return nil
}

// ReadEvent blocks until one input event is available, the input ends,
// or the context is canceled.
func (s *ANSISurface) ReadEvent(ctx context.Context) (entities.KeyEvent, error) {
	select {
	case <-ctx.Done():
		return entities.KeyEvent{}, ctx.Err()
	case ev, ok := <-s.events:
		if !ok {
			return entities.KeyEvent{}, ErrInputClosed
		}
		return ev, nil
	}
}

// sgr renders the attribute set as a Select Graphic Rendition sequence,
// or "" for an unstyled write.
func sgr(attr ports.Attr) string {
	if !attr.Bold && !attr.Reverse && attr.ColorPair == 0 {
		return ""
	}

	var params []string
	if attr.Bold {
		params = append(params, "1")
	}
	if attr.Reverse {
		params = append(params, "7")
	}
	if attr.ColorPair != 0 {
		params = append(params, fmt.Sprintf("38;5;%d", attr.ColorPair))
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
