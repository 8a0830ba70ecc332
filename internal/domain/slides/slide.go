package slides

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// Status reports what a slide wants the player to do after processing
// an input event.
type Status int

const (
	// StatusContinue keeps the slide active.
	StatusContinue Status = iota

	// StatusFinished ends the slide; the player advances the timeline.
	// This is deliberate completion, not a failure.
	StatusFinished
)

// ErrBufferExhausted is returned when an advance is requested on a slide
// whose capture buffer is already empty.
var ErrBufferExhausted = errors.New("slide buffer exhausted")

// Slide is one unit of presentable content. A slide is populated during
// authoring via Append and consumed front-first during playback; an
// already-consumed buffer element is never re-read.
type Slide interface {
	// ID is a unique identifier used for diagnostics correlation.
	ID() string

	// Kind names the slide variant for diagnostics.
	Kind() string

	// Transition is the effect played before this slide is shown.
	Transition() entities.Transition

	// SetTransition sets the effect played before this slide.
	SetTransition(t entities.Transition)

	// CursorVisible reports whether the cursor should be shown while
	// this slide is active.
	CursorVisible() bool

	// Append captures content lines into the slide buffer. A single
	// trailing newline per line is stripped; embedded newlines are
	// preserved as part of one buffer element.
	Append(lines ...string)

	// BufferLen returns the number of unconsumed buffer elements.
	BufferLen() int

	// Prepare draws the slide's initial visible state. Called exactly
	// once when the player hands control to the slide.
	Prepare(s ports.Surface) error

	// Process handles one input event. It returns StatusFinished to
	// signal deliberate completion; any error is a fault, which the
	// player reports to diagnostics and treats as the end of the slide.
	Process(s ports.Surface, ev entities.KeyEvent) (Status, error)
}

// base carries the capture buffer and the authoring-time state shared by
// all slide variants.
type base struct {
	id         string
	kind       string
	buffer     []string
	transition entities.Transition
	cursor     bool
}

func newBase(kind string, cursorVisible bool) base {
	return base{
		id:     uuid.NewString(),
		kind:   kind,
		cursor: cursorVisible,
	}
}

// ID returns the slide's unique identifier.
func (b *base) ID() string { return b.id }

// Kind returns the slide variant name.
func (b *base) Kind() string { return b.kind }

// Transition returns the effect played before this slide.
func (b *base) Transition() entities.Transition { return b.transition }

// SetTransition sets the effect played before this slide.
func (b *base) SetTransition(t entities.Transition) { b.transition = t }

// CursorVisible reports whether the cursor is shown for this slide.
func (b *base) CursorVisible() bool { return b.cursor }

// Append captures content lines into the slide buffer.
func (b *base) Append(lines ...string) {
	for _, line := range lines {
		b.buffer = append(b.buffer, strings.TrimSuffix(line, "\n"))
	}
}

// BufferLen returns the number of unconsumed buffer elements.
func (b *base) BufferLen() int { return len(b.buffer) }

// pop removes and returns the front buffer element.
func (b *base) pop() (string, bool) {
	if len(b.buffer) == 0 {
		return "", false
	}
	head := b.buffer[0]
	b.buffer = b.buffer[1:]
	return head, true
}

// drain removes and returns all remaining buffer elements.
func (b *base) drain() []string {
	out := b.buffer
	b.buffer = nil
	return out
}
