package entities

import "strings"

// Metadata holds presentation-level metadata declared in the script
// frontmatter. When a title is present the authoring layer synthesizes a
// leading chapter slide from it.
type Metadata struct {
	Title  string
	Author string

	// DefaultTransition applies to slides that declare no transition of
	// their own.
	DefaultTransition Transition
}

// HasTitle reports whether the metadata carries a usable title.
func (m Metadata) HasTitle() bool {
	return strings.TrimSpace(m.Title) != ""
}

// TitleLines returns the lines of the synthesized title chapter.
func (m Metadata) TitleLines() []string {
	lines := []string{strings.TrimSpace(m.Title)}
	if author := strings.TrimSpace(m.Author); author != "" {
		lines = append(lines, "", author)
	}
	return lines
}
