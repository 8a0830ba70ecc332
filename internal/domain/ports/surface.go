package ports

import (
	"context"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
)

// Attr describes the display attributes of a surface write. The zero
// value is an unstyled write.
type Attr struct {
	// Bold emphasizes the text.
	Bold bool

	// Reverse swaps foreground and background.
	Reverse bool

	// ColorPair selects a registered color; 0 is the default foreground.
	ColorPair int
}

// Surface abstracts the full-screen terminal drawing capability the
// player and the slides draw on. Writes outside the surface bounds are
// clipped, never failed: rendering faults must not end a slide.
type Surface interface {
	// Write draws text at the current cursor position, advancing the
	// cursor. A newline moves the cursor to the start of the next row.
	Write(text string, attr Attr)

	// WriteAt moves the cursor to (row, col) and draws text there.
	WriteAt(row, col int, text string, attr Attr)

	// MoveTo places the cursor at (row, col), clamped to the bounds.
	MoveTo(row, col int)

	// Clear erases the surface and homes the cursor.
	Clear()

	// Size returns the surface dimensions.
	Size() (rows, cols int)

	// SetCursorVisible shows or hides the cursor.
	SetCursorVisible(visible bool)

	// Flash inverts the whole surface briefly.
	Flash()

	// DeleteLine erases the row the cursor is on.
	DeleteLine()

	// Flush pushes any buffered drawing to the terminal.
	Flush() error

	// ReadEvent blocks until one input event is available or the context
	// is canceled.
	ReadEvent(ctx context.Context) (entities.KeyEvent, error)
}
