package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
	"github.com/fredcamaral/termdeck/internal/domain/slides"
)

// transitionDirective declares a per-slide transition inside a chunk.
var transitionDirective = regexp.MustCompile(`<!--\s*transition:\s*([^>]+?)\s*-->`)

// MarkdownLoader loads presentation scripts written in markdown. YAML
// frontmatter supplies presentation metadata (synthesized into a leading
// chapter); slides are separated by --- rules and classified by their
// content: a console/pycon code fence becomes a simulated session, any
// other fence a source listing, a bullet list a bullets slide, plain
// text a chapter.
type MarkdownLoader struct {
	cfg       *entities.Config
	formatter ports.Formatter
	md        goldmark.Markdown
}

// NewMarkdownLoader creates a script loader using the given
// configuration for prompts, glyphs, and the default transition.
func NewMarkdownLoader(cfg *entities.Config, formatter ports.Formatter) *MarkdownLoader {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	return &MarkdownLoader{
		cfg:       cfg,
		formatter: formatter,
		md:        md,
	}
}

// Load reads and parses a presentation script from a file path.
func (l *MarkdownLoader) Load(ctx context.Context, path string) (*slides.Timeline, error) {
	content, err := os.ReadFile(path) // #nosec G304 - path is the user-supplied script argument
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}

	timeline, err := l.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}

	return timeline, nil
}

// Parse parses script content into a playable timeline.
func (l *MarkdownLoader) Parse(ctx context.Context, content []byte) (*slides.Timeline, error) {
	frontmatter, remaining := extractFrontmatter(content)

	meta, err := l.metadataFrom(frontmatter)
	if err != nil {
		return nil, err
	}

	builder := slides.NewTimelineBuilder()
	builder.SetMetadata(meta)

	for i, chunk := range splitSlides(remaining) {
		slide, err := l.parseChunk(chunk, meta.DefaultTransition)
		if err != nil {
			return nil, fmt.Errorf("parsing slide %d: %w", i+1, err)
		}
		if slide != nil {
			builder.Add(slide)
		}
	}

	timeline := builder.Build()
	if timeline.Len() == 0 {
		return nil, errors.New("script declares no slides")
	}

	return timeline, nil
}

// metadataFrom converts frontmatter into presentation metadata. The
// frontmatter transition, when present, overrides the configured
// default.
func (l *MarkdownLoader) metadataFrom(frontmatter map[string]interface{}) (entities.Metadata, error) {
	meta := entities.Metadata{}

	if title, ok := frontmatter["title"].(string); ok {
		meta.Title = title
	}
	if author, ok := frontmatter["author"].(string); ok {
		meta.Author = author
	}

	declared := l.cfg.Playback.DefaultTransition
	if t, ok := frontmatter["transition"].(string); ok && t != "" {
		declared = t
	}

	transition, err := entities.ParseTransition(declared)
	if err != nil {
		return entities.Metadata{}, fmt.Errorf("frontmatter transition: %w", err)
	}
	meta.DefaultTransition = transition

	return meta, nil
}

// parseChunk classifies one slide chunk and builds the matching slide
// variant. Empty chunks yield nil.
func (l *MarkdownLoader) parseChunk(chunk []byte, defaultTransition entities.Transition) (slides.Slide, error) {
	transition := defaultTransition
	if m := transitionDirective.FindSubmatch(chunk); m != nil {
		t, err := entities.ParseTransition(string(m[1]))
		if err != nil {
			return nil, err
		}
		transition = t
		chunk = transitionDirective.ReplaceAll(chunk, nil)
	}

	doc := l.md.Parser().Parse(text.NewReader(chunk))

	var heading string
	var list *ast.List
	var fence *ast.FencedCodeBlock

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch t := n.(type) {
		case *ast.Heading:
			if heading == "" {
				heading = nodeText(t, chunk)
			}
		case *ast.List:
			if list == nil {
				list = t
			}
		case *ast.FencedCodeBlock:
			if fence == nil {
				fence = t
			}
		}
	}

	var slide slides.Slide
	var err error

	switch {
	case fence != nil:
		slide, err = l.parseFence(fence, chunk, heading)
	case list != nil:
		slide = l.parseBullets(heading, list, chunk)
	default:
		slide = parseChapter(chunk)
	}

	if err != nil || slide == nil {
		return nil, err
	}

	slide.SetTransition(transition)
	return slide, nil
}

// parseFence builds a shell, python-shell, or source-listing slide from
// a fenced code block, keyed by the fence language.
func (l *MarkdownLoader) parseFence(fence *ast.FencedCodeBlock, chunk []byte, heading string) (slides.Slide, error) {
	lang := strings.ToLower(string(fence.Language(chunk)))
	lines := fenceLines(fence, chunk)

	switch lang {
	case "console", "shell", "sh", "bash", "shell-session":
		sh := slides.NewShell()
		sh.SetPrompts(l.cfg.Shell.Prompt, l.cfg.Shell.ContinuationPrompt)
		captureSession(sh, lines, l.cfg.Shell.Prompt, l.cfg.Shell.ContinuationPrompt, false)
		return sh, nil

	case "pycon", "pyshell", "python-repl":
		py := slides.NewPythonShell()
		py.SetPrompts(l.cfg.Python.Prompt, l.cfg.Python.ContinuationPrompt)
		if l.cfg.Python.Banner != "" {
			py.SetBanner(l.cfg.Python.Banner)
		}
		captureSession(py, lines, l.cfg.Python.Prompt, l.cfg.Python.ContinuationPrompt, true)
		return py, nil
	}

	if lang == "" {
		lang = "text"
	}
	filename := fenceInfoAttr(fence, chunk, "title", "file")
	if filename == "" {
		filename = heading
	}

	view := slides.NewSourceView(l.formatter, lang, filename)
	view.Append(lines...)
	return view, nil
}

// parseBullets builds a bullets slide titled by the chunk heading, one
// item per list entry.
func (l *MarkdownLoader) parseBullets(heading string, list *ast.List, chunk []byte) slides.Slide {
	bullets := slides.NewBullets(heading)
	bullets.SetGlyphs(l.cfg.Bullets.Glyph, l.cfg.Bullets.Rule)

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		bullets.Append(nodeText(item, chunk))
	}

	return bullets
}

// parseChapter builds a chapter from the chunk's raw lines, stripping
// heading markers and preserving interior blank lines.
func parseChapter(chunk []byte) slides.Slide {
	raw := strings.Split(strings.ReplaceAll(string(chunk), "\r\n", "\n"), "\n")

	var lines []string
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			line = strings.TrimLeft(trimmed, "#")
			line = strings.TrimPrefix(line, " ")
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}

	lines = trimBlankEdges(lines)
	if len(lines) == 0 {
		return nil
	}

	chapter := slides.NewChapter()
	chapter.Append(lines...)
	return chapter
}

// extractFrontmatter extracts YAML frontmatter from script content
func extractFrontmatter(content []byte) (map[string]interface{}, []byte) {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, content
	}

	lines := bytes.Split(content, []byte("\n"))
	endIndex := -1

	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			endIndex = i
			break
		}
	}

	if endIndex == -1 {
		return nil, content
	}

	frontmatterBytes := bytes.Join(lines[1:endIndex], []byte("\n"))

	var frontmatter map[string]interface{}
	if len(bytes.TrimSpace(frontmatterBytes)) == 0 {
		frontmatter = make(map[string]interface{})
	} else if err := yaml.Unmarshal(frontmatterBytes, &frontmatter); err != nil {
		return nil, content
	}

	return frontmatter, bytes.Join(lines[endIndex+1:], []byte("\n"))
}

// splitSlides splits script content into per-slide chunks on --- rules.
func splitSlides(content []byte) [][]byte {
	contentStr := strings.ReplaceAll(string(content), "\r\n", "\n")

	parts := strings.Split(contentStr, "\n---\n")

	chunks := make([][]byte, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			chunks = append(chunks, []byte(part))
		}
	}

	return chunks
}

// fenceLines returns the fence content line by line, without trailing
// newlines.
func fenceLines(fence *ast.FencedCodeBlock, source []byte) []string {
	segments := fence.Lines()

	lines := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lines = append(lines, strings.TrimSuffix(string(seg.Value(source)), "\n"))
	}
	return lines
}

// fenceInfoAttr extracts a key=value attribute from the fence info line.
func fenceInfoAttr(fence *ast.FencedCodeBlock, source []byte, keys ...string) string {
	if fence.Info == nil {
		return ""
	}

	for _, field := range strings.Fields(string(fence.Info.Segment.Value(source))) {
		for _, key := range keys {
			if value, ok := strings.CutPrefix(field, key+"="); ok {
				return strings.Trim(value, `"`)
			}
		}
	}
	return ""
}

// nodeText collects the plain text under an AST node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder

	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})

	return sb.String()
}

// trimBlankEdges removes leading and trailing blank lines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}

	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}

	return lines[start:end]
}
