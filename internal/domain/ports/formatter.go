package ports

// StyledRun is a span of text with uniform display attributes.
type StyledRun struct {
	Text  string
	Style Attr
}

// Formatter converts a block of source text, keyed by its declared file
// type, into styled runs for display. Used by source-listing slides.
type Formatter interface {
	Format(source, fileType string) ([]StyledRun, error)
}
