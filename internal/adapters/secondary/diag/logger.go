package diag

import (
	"fmt"
	"log"
	"os"

	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// FileDiagnostics implements the Diagnostics port with a std log.Logger
// writing to a file. Playback owns the terminal, so faults must never
// reach stdout or stderr while a presentation is on screen.
type FileDiagnostics struct {
	logger *log.Logger
	file   *os.File
}

// NewFileDiagnostics opens (appending) the given log file.
func NewFileDiagnostics(path string) (*FileDiagnostics, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) // #nosec G304 - path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("opening diagnostics log %s: %w", path, err)
	}

	return &FileDiagnostics{
		logger: log.New(file, "", log.LstdFlags|log.Lmicroseconds),
		file:   file,
	}, nil
}

// SlideFault records a fault raised by a slide during playback.
func (d *FileDiagnostics) SlideFault(slideID, kind string, err error) {
	d.logger.Printf("[FAULT] slide %s (%s): %v", slideID, kind, err)
}

// Eventf records a playback lifecycle event.
func (d *FileDiagnostics) Eventf(format string, args ...interface{}) {
	d.logger.Printf("[EVENT] "+format, args...)
}

// Close flushes and closes the underlying log file.
func (d *FileDiagnostics) Close() error {
	if err := d.file.Close(); err != nil {
		return fmt.Errorf("closing diagnostics log: %w", err)
	}
	return nil
}

// Nop is a Diagnostics that discards everything. Used when no log file
// is configured.
type Nop struct{}

// SlideFault discards the fault.
func (Nop) SlideFault(slideID, kind string, err error) {}

// Eventf discards the event.
func (Nop) Eventf(format string, args ...interface{}) {}

// Ensure both implementations satisfy the port
var (
	_ ports.Diagnostics = (*FileDiagnostics)(nil)
	_ ports.Diagnostics = Nop{}
)
