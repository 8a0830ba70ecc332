package entities

// KeyType enumerates the kinds of key events the player can receive.
type KeyType int

const (
	// KeyRune is a printable character.
	KeyRune KeyType = iota

	// KeyEnter is the primary activation key (Return).
	KeyEnter

	// KeySpace is the advance key.
	KeySpace

	// KeyEscape is the escape key.
	KeyEscape

	// KeyInterrupt is an interrupt request (Ctrl-C while in raw mode).
	KeyInterrupt

	// KeyUnknown is any input the reader could not classify.
	KeyUnknown
)

// KeyEvent represents a single keyboard input event read from the surface.
type KeyEvent struct {
	Type KeyType
	Rune rune // set only for KeyRune
}

// IsConfirm reports whether the event is the primary activation key.
func (e KeyEvent) IsConfirm() bool {
	return e.Type == KeyEnter
}

// IsAdvance reports whether the event advances incremental content
// (confirm or space).
func (e KeyEvent) IsAdvance() bool {
	return e.Type == KeyEnter || e.Type == KeySpace
}
