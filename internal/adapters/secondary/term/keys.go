package term

import (
	"bufio"
	"unicode/utf8"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
)

// readKey decodes one key event from raw terminal input. Escape
// sequences (CSI/SS3) are consumed and reported as KeyUnknown; a lone
// ESC byte is the escape key. Ctrl-C maps to KeyInterrupt so the player
// can unwind cleanly while the terminal is in raw mode.
func readKey(r *bufio.Reader) (entities.KeyEvent, error) {
	b, err := r.ReadByte()
	if err != nil {
		return entities.KeyEvent{}, err
	}

	switch b {
	case 0x03:
		return entities.KeyEvent{Type: entities.KeyInterrupt}, nil
	case '\r', '\n':
		return entities.KeyEvent{Type: entities.KeyEnter}, nil
	case ' ':
		return entities.KeyEvent{Type: entities.KeySpace}, nil
	case 0x1b:
		return readEscape(r), nil
	}

	if b < 0x20 || b == 0x7f {
		return entities.KeyEvent{Type: entities.KeyUnknown}, nil
	}

	if b < utf8.RuneSelf {
		return entities.KeyEvent{Type: entities.KeyRune, Rune: rune(b)}, nil
	}

	// Multi-byte rune: put the lead byte back and decode the whole rune.
	if err := r.UnreadByte(); err != nil {
		return entities.KeyEvent{Type: entities.KeyUnknown}, nil
	}
	ru, _, err := r.ReadRune()
	if err != nil {
		return entities.KeyEvent{}, err
	}
	return entities.KeyEvent{Type: entities.KeyRune, Rune: ru}, nil
}

// readEscape classifies input following an ESC byte. With no buffered
// follow-up the ESC stands alone; otherwise a CSI sequence is consumed
// through its final byte and an SS3 sequence through its single code.
func readEscape(r *bufio.Reader) entities.KeyEvent {
	if r.Buffered() == 0 {
		return entities.KeyEvent{Type: entities.KeyEscape}
	}

	b, err := r.ReadByte()
	if err != nil {
		return entities.KeyEvent{Type: entities.KeyEscape}
	}

	switch b {
	case '[':
		// CSI: parameter/intermediate bytes until a final in 0x40..0x7e.
		for r.Buffered() > 0 {
			fb, err := r.ReadByte()
			if err != nil || (fb >= 0x40 && fb <= 0x7e) {
				break
			}
		}
	case 'O':
		// SS3: exactly one code byte.
		if r.Buffered() > 0 {
			_, _ = r.ReadByte()
		}
	}

	return entities.KeyEvent{Type: entities.KeyUnknown}
}
