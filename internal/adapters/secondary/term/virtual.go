package term

import (
	"context"
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// VirtualSurface is a fake Surface for unit tests. It records every
// drawing operation in a deterministic textual log, tracks the cursor
// the same way ANSISurface does, and replays a scripted sequence of
// input events.
type VirtualSurface struct {
	rows, cols int
	row, col   int

	ops     []string
	events  []entities.KeyEvent
	flushes int
	visible bool
}

// NewVirtualSurface returns a VirtualSurface with the given dimensions.
func NewVirtualSurface(rows, cols int) *VirtualSurface {
	return &VirtualSurface{rows: rows, cols: cols}
}

// Enqueue appends input events for ReadEvent to replay in order.
func (v *VirtualSurface) Enqueue(events ...entities.KeyEvent) {
	v.events = append(v.events, events...)
}

// Write records a write at the cursor and advances it.
func (v *VirtualSurface) Write(text string, attr ports.Attr) {
	v.ops = append(v.ops, fmt.Sprintf("write(%q, %s)", text, attrString(attr)))
	v.advance(text)
}

// WriteAt records a positioned write.
func (v *VirtualSurface) WriteAt(row, col int, text string, attr ports.Attr) {
	v.MoveTo(row, col)
	v.Write(text, attr)
}

// MoveTo records a cursor move, clamped to the bounds.
func (v *VirtualSurface) MoveTo(row, col int) {
	v.row = clamp(row, 0, v.rows-1)
	v.col = clamp(col, 0, v.cols-1)
	v.ops = append(v.ops, fmt.Sprintf("move(%d,%d)", v.row, v.col))
}

// Clear records a clear and homes the cursor.
func (v *VirtualSurface) Clear() {
	v.ops = append(v.ops, "clear")
	v.row, v.col = 0, 0
}

// Size returns the configured dimensions.
func (v *VirtualSurface) Size() (rows, cols int) {
	return v.rows, v.cols
}

// SetCursorVisible records the cursor visibility change.
func (v *VirtualSurface) SetCursorVisible(visible bool) {
	v.visible = visible
	v.ops = append(v.ops, fmt.Sprintf("cursor(%t)", visible))
}

// Flash records a flash.
func (v *VirtualSurface) Flash() {
	v.ops = append(v.ops, "flash")
}

// DeleteLine records an erase of the cursor's row.
func (v *VirtualSurface) DeleteLine() {
	v.ops = append(v.ops, fmt.Sprintf("deleteline(%d)", v.row))
}

// Flush counts flushes; the log itself is always current.
func (v *VirtualSurface) Flush() error {
	v.flushes++
	return nil
}

// ReadEvent replays the next scripted event. An exhausted script is an
// input-closed error, like a real terminal whose input ended.
func (v *VirtualSurface) ReadEvent(ctx context.Context) (entities.KeyEvent, error) {
	if err := ctx.Err(); err != nil {
		return entities.KeyEvent{}, err
	}
	if len(v.events) == 0 {
		return entities.KeyEvent{}, ErrInputClosed
	}
	ev := v.events[0]
	v.events = v.events[1:]
	return ev, nil
}

// --- Test helpers (not part of the Surface port) ---

// Output returns the full operation log, one operation per line.
func (v *VirtualSurface) Output() string {
	return strings.Join(v.ops, "\n")
}

// Ops returns a copy of the raw operation log.
func (v *VirtualSurface) Ops() []string {
	return append([]string(nil), v.ops...)
}

// Cursor returns the current cursor position.
func (v *VirtualSurface) Cursor() (row, col int) {
	return v.row, v.col
}

// CursorVisible reports the last visibility set on the surface.
func (v *VirtualSurface) CursorVisible() bool {
	return v.visible
}

// Flushes returns how many times Flush was called.
func (v *VirtualSurface) Flushes() int {
	return v.flushes
}

// Reset clears the operation log, keeping geometry and queued events.
func (v *VirtualSurface) Reset() {
	v.ops = nil
}

// advance mirrors ANSISurface cursor movement for the written text.
func (v *VirtualSurface) advance(text string) {
	for _, r := range text {
		if r == '\n' {
			v.col = 0
			if v.row < v.rows-1 {
				v.row++
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if v.col+w > v.cols {
			continue
		}
		v.col += w
	}
}

func attrString(attr ports.Attr) string {
	if !attr.Bold && !attr.Reverse && attr.ColorPair == 0 {
		return "plain"
	}

	var parts []string
	if attr.Bold {
		parts = append(parts, "bold")
	}
	if attr.Reverse {
		parts = append(parts, "reverse")
	}
	if attr.ColorPair != 0 {
		parts = append(parts, fmt.Sprintf("color%d", attr.ColorPair))
	}
	return strings.Join(parts, "+")
}
