package slides

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// SourceView shows a syntax-highlighted source listing. The buffered
// lines are run through the external formatter keyed by file type, and a
// filename label is overlaid in reverse video near the bottom. Any
// confirm key ends the slide; there is no incremental reveal.
type SourceView struct {
	base
	formatter ports.Formatter
	fileType  string
	filename  string
}

// NewSourceView creates a source-listing slide for the given file type.
func NewSourceView(formatter ports.Formatter, fileType, filename string) *SourceView {
	if filename == "" {
		filename = fileType
	}
	return &SourceView{
		base:      newBase("source", false),
		formatter: formatter,
		fileType:  fileType,
		filename:  filename,
	}
}

// Prepare formats the buffered source and writes the styled runs,
// then overlays the filename label.
func (sv *SourceView) Prepare(s ports.Surface) error {
	source := strings.Join(sv.drain(), "\n")

	runs, err := sv.formatter.Format(source, sv.fileType)
	if err != nil {
		return fmt.Errorf("formatting %s source: %w", sv.fileType, err)
	}

	for _, run := range runs {
		s.Write(run.Text, run.Style)
	}

	rows, cols := s.Size()
	label := " " + sv.filename + " "
	col := cols - runewidth.StringWidth(label) - 1
	if col < 0 {
		col = 0
	}
	s.WriteAt(rows-2, col, label, ports.Attr{Reverse: true})

	return nil
}

// Process ends the slide on any confirm key.
func (sv *SourceView) Process(s ports.Surface, ev entities.KeyEvent) (Status, error) {
	if ev.IsConfirm() {
		return StatusFinished, nil
	}
	return StatusContinue, nil
}
