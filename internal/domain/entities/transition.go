package entities

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TransitionKind identifies the effect played before a slide is shown.
type TransitionKind int

const (
	// TransitionNone plays no effect.
	TransitionNone TransitionKind = iota

	// TransitionFlash inverts the whole screen a number of times.
	TransitionFlash

	// TransitionWipe rasters a glyph over the screen column by column.
	TransitionWipe
)

// Transition describes the effect played before a slide. The zero value
// is the no-effect transition.
type Transition struct {
	Kind  TransitionKind
	Count int  // flash repetitions, TransitionFlash only
	Glyph rune // fill glyph, TransitionWipe only
}

// NoTransition returns the no-effect transition.
func NoTransition() Transition {
	return Transition{Kind: TransitionNone}
}

// FlashTransition returns a flash transition repeated count times.
func FlashTransition(count int) Transition {
	return Transition{Kind: TransitionFlash, Count: count}
}

// WipeTransition returns a raster wipe transition using the given glyph.
func WipeTransition(glyph rune) Transition {
	return Transition{Kind: TransitionWipe, Glyph: glyph}
}

// ParseTransition parses a transition declaration. Accepted forms:
// "none" (or empty), "flash N" or a bare integer, "wipe G" or a bare
// single glyph.
func ParseTransition(s string) (Transition, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "" || strings.EqualFold(s, "none"):
		return NoTransition(), nil

	case strings.HasPrefix(strings.ToLower(s), "flash"):
		arg := strings.TrimSpace(s[len("flash"):])
		count, err := strconv.Atoi(arg)
		if err != nil {
			return Transition{}, fmt.Errorf("invalid flash count %q: %w", arg, err)
		}
		if count <= 0 {
			return NoTransition(), nil
		}
		return FlashTransition(count), nil

	case strings.HasPrefix(strings.ToLower(s), "wipe"):
		arg := strings.TrimSpace(s[len("wipe"):])
		glyph, size := utf8.DecodeRuneInString(arg)
		if size == 0 || size != len(arg) {
			return Transition{}, fmt.Errorf("wipe glyph must be a single character, got %q", arg)
		}
		return WipeTransition(glyph), nil
	}

	// Bare forms: an integer is a flash count, a single glyph is a wipe.
	if count, err := strconv.Atoi(s); err == nil {
		if count <= 0 {
			return NoTransition(), nil
		}
		return FlashTransition(count), nil
	}
	if glyph, size := utf8.DecodeRuneInString(s); size == len(s) {
		return WipeTransition(glyph), nil
	}

	return Transition{}, fmt.Errorf("unrecognized transition %q", s)
}

// String returns the canonical declaration form of the transition.
func (t Transition) String() string {
	switch t.Kind {
	case TransitionFlash:
		return fmt.Sprintf("flash %d", t.Count)
	case TransitionWipe:
		return fmt.Sprintf("wipe %c", t.Glyph)
	default:
		return "none"
	}
}
