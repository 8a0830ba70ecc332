package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// ChromaFormatter implements the Formatter port using Chroma lexers.
// Token colors are quantized to the xterm 256-color cube so they map
// onto the surface's color-pair attribute.
type ChromaFormatter struct {
	style *chroma.Style
}

// NewChromaFormatter creates a formatter using the named Chroma style.
// An unknown style name falls back to the Chroma default.
func NewChromaFormatter(styleName string) *ChromaFormatter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &ChromaFormatter{style: style}
}

// Format tokenizes the source keyed by file type and emits one styled
// run per token. An unknown file type falls back to the plain-text
// lexer rather than failing the slide.
func (f *ChromaFormatter) Format(source, fileType string) ([]ports.StyledRun, error) {
	lexer := lexers.Get(fileType)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenizing %s source: %w", fileType, err)
	}

	var runs []ports.StyledRun
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := f.style.Get(token.Type)

		runs = append(runs, ports.StyledRun{
			Text: token.Value,
			Style: ports.Attr{
				Bold:      entry.Bold == chroma.Yes,
				ColorPair: colorIndex(entry.Colour),
			},
		})
	}

	return runs, nil
}

// colorIndex quantizes a 24-bit color to the 6x6x6 xterm color cube.
// An unset color maps to the default foreground (0).
func colorIndex(c chroma.Colour) int {
	if !c.IsSet() {
		return 0
	}

	r := int(c.Red()) * 6 / 256
	g := int(c.Green()) * 6 / 256
	b := int(c.Blue()) * 6 / 256
	return 16 + 36*r + 6*g + b
}

// Ensure ChromaFormatter implements ports.Formatter
var _ ports.Formatter = (*ChromaFormatter)(nil)
