package ports

// Diagnostics is the operator-visible channel for playback faults. It is
// distinct from the presentation surface: implementations must never
// draw on the terminal the presentation runs on.
type Diagnostics interface {
	// SlideFault records a fault raised by a slide during playback. The
	// player advances past the slide; the fault is only visible here.
	SlideFault(slideID, kind string, err error)

	// Eventf records a playback lifecycle event.
	Eventf(format string, args ...interface{})
}
