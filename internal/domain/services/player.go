package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
	"github.com/fredcamaral/termdeck/internal/domain/slides"
)

// exitHint is the footer shown after the last slide while waiting for
// the exit key.
const exitHint = " end of presentation - press q or esc to leave "

// Player sequences a timeline on a surface: per-slide transition
// effect, settle pause, prepare, input pump, and a final exit-key wait.
// The player knows nothing about what a keystroke means to the active
// slide; it only dispatches events and advances on completion.
type Player struct {
	timeline *slides.Timeline
	surface  ports.Surface
	timing   entities.PlaybackConfig
	diag     ports.Diagnostics
}

// NewPlayer creates a player for the given timeline and surface.
func NewPlayer(timeline *slides.Timeline, surface ports.Surface, timing entities.PlaybackConfig, diag ports.Diagnostics) *Player {
	return &Player{
		timeline: timeline,
		surface:  surface,
		timing:   timing,
		diag:     diag,
	}
}

// Play runs the presentation to completion. It returns nil on a normal
// finish and on keystroke- or context-driven interruption; only input
// failures surface as errors. Slide faults are reported to diagnostics
// and advance the timeline, so a live presentation never hangs.
func (p *Player) Play(ctx context.Context) error {
	p.diag.Eventf("playback started: %d slides", p.timeline.Len())

	for i, slide := range p.timeline.Slides() {
		if ctx.Err() != nil {
			p.diag.Eventf("playback interrupted before slide %d", i+1)
			return nil
		}

		p.runTransition(slide.Transition())
		p.pause(p.timing.SettleDelay())

		p.surface.Clear()
		p.surface.SetCursorVisible(slide.CursorVisible())

		if err := slide.Prepare(p.surface); err != nil {
			p.diag.SlideFault(slide.ID(), slide.Kind(), err)
			continue
		}
		_ = p.surface.Flush()

		stop, err := p.pump(ctx, slide)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}

	return p.outro(ctx)
}

// pump dispatches input events to the active slide until it completes.
// It reports stop=true when playback should end early (interrupt or
// canceled context).
func (p *Player) pump(ctx context.Context, slide slides.Slide) (stop bool, err error) {
	for {
		ev, err := p.surface.ReadEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				p.diag.Eventf("playback interrupted")
				return true, nil
			}
			return true, fmt.Errorf("reading input: %w", err)
		}

		if ev.Type == entities.KeyInterrupt {
			p.diag.Eventf("playback interrupted by keystroke")
			return true, nil
		}

		status, perr := slide.Process(p.surface, ev)
		_ = p.surface.Flush()

		if perr != nil {
			// A fault ends the slide exactly like deliberate completion,
			// but travels the diagnostics channel, never the surface.
			p.diag.SlideFault(slide.ID(), slide.Kind(), perr)
			return false, nil
		}
		if status == slides.StatusFinished {
			return false, nil
		}
	}
}

// outro shows the persistent footer hint and waits for the exit key,
// ignoring everything else.
func (p *Player) outro(ctx context.Context) error {
	rows, _ := p.surface.Size()
	p.surface.WriteAt(rows-1, 0, exitHint, ports.Attr{Reverse: true})
	_ = p.surface.Flush()

	for {
		ev, err := p.surface.ReadEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		switch {
		case ev.Type == entities.KeyEscape,
			ev.Type == entities.KeyEnter,
			ev.Type == entities.KeyInterrupt,
			ev.Type == entities.KeyRune && ev.Rune == 'q':
			p.diag.Eventf("playback finished")
			return nil
		}
	}
}

// runTransition plays the slide's transition effect.
func (p *Player) runTransition(t entities.Transition) {
	switch t.Kind {
	case entities.TransitionFlash:
		for i := 0; i < t.Count; i++ {
			p.surface.Flash()
			p.pause(p.timing.FlashDelay())
		}

	case entities.TransitionWipe:
		p.wipe(t.Glyph)
	}
}

// wipe rasters the glyph over every cell, column by column, skipping
// only the bottom-right cell, producing a left-to-right wipe.
func (p *Player) wipe(glyph rune) {
	rows, cols := p.surface.Size()
	g := string(glyph)

	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			if row == rows-1 && col == cols-1 {
				continue
			}
			p.surface.WriteAt(row, col, g, ports.Attr{})
		}
		_ = p.surface.Flush()
		p.pause(p.timing.WipeColumnDelay())
	}
}

func (p *Player) pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
