package services

import (
	"context"

	"github.com/fredcamaral/termdeck/internal/domain/slides"
)

// ScriptLoader produces a playable timeline from a presentation script.
// Loading happens entirely before any terminal mode is entered, so load
// failures are reported on a sane terminal.
type ScriptLoader interface {
	Load(ctx context.Context, path string) (*slides.Timeline, error)
}
