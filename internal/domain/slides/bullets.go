package slides

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// Bullets reveals one buffered item per confirm/advance key. The newest
// item is drawn emphasized; the previously revealed one is re-drawn as a
// plain bullet line. Once the buffer is empty the cursor parks at the
// bottom-right corner; the slide does not end on its own. A further
// advance is a buffer-exhausted fault, which the player treats as the
// end of the slide.
type Bullets struct {
	base
	title string
	glyph string
	rule  string

	row     int
	lastRow int
	last    string
	shown   bool
}

// NewBullets creates a bullet-list slide with the given title.
func NewBullets(title string) *Bullets {
	return &Bullets{
		base:  newBase("bullets", false),
		title: title,
		glyph: "*",
		rule:  "=",
	}
}

// Title returns the slide title.
func (b *Bullets) Title() string { return b.title }

// SetGlyphs overrides the bullet glyph and the underline rule character.
func (b *Bullets) SetGlyphs(glyph, rule string) {
	if glyph != "" {
		b.glyph = glyph
	}
	if rule != "" {
		b.rule = rule
	}
}

// Prepare writes the title, an underline rule sized to the title width,
// and a blank separator line.
func (b *Bullets) Prepare(s ports.Surface) error {
	s.WriteAt(0, 0, b.title, ports.Attr{})
	s.WriteAt(1, 0, strings.Repeat(b.rule, runewidth.StringWidth(b.title)), ports.Attr{})
	b.row = 3
	return nil
}

// Process reveals the next item on a confirm/advance key. Revealing the
// final item parks the cursor at the bottom-right corner; advancing past
// it returns ErrBufferExhausted.
func (b *Bullets) Process(s ports.Surface, ev entities.KeyEvent) (Status, error) {
	if !ev.IsAdvance() {
		return StatusContinue, nil
	}

	item, ok := b.pop()
	if !ok {
		return StatusContinue, ErrBufferExhausted
	}

	if b.shown {
		s.MoveTo(b.lastRow, 0)
		s.DeleteLine()
		s.Write(b.glyph+" "+b.last, ports.Attr{})
	}

	s.WriteAt(b.row, 0, b.glyph+" "+item, ports.Attr{Bold: true})
	s.MoveTo(b.row, 0)

	b.last = item
	b.lastRow = b.row
	b.row++
	b.shown = true

	if b.BufferLen() == 0 {
		rows, cols := s.Size()
		s.MoveTo(rows-1, cols-1)
	}

	return StatusContinue, nil
}
