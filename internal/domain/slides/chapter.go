package slides

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// Chapter is a static title screen: its buffered lines are centered on
// the surface and any confirm key ends the slide. There is no
// incremental reveal.
type Chapter struct {
	base
}

// NewChapter creates an empty chapter slide.
func NewChapter() *Chapter {
	return &Chapter{base: newBase("chapter", false)}
}

// Prepare centers the buffered lines vertically and horizontally and
// writes them, consuming the buffer.
func (c *Chapter) Prepare(s ports.Surface) error {
	lines := c.drain()
	rows, cols := s.Size()

	top := (rows - len(lines)) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range lines {
		col := (cols - runewidth.StringWidth(line)) / 2
		if col < 0 {
			col = 0
		}
		s.WriteAt(top+i, col, line, ports.Attr{})
	}

	return nil
}

// Process ends the slide on any confirm key.
func (c *Chapter) Process(s ports.Surface, ev entities.KeyEvent) (Status, error) {
	if ev.IsConfirm() {
		return StatusFinished, nil
	}
	return StatusContinue, nil
}
