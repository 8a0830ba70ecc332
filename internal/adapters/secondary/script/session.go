package script

import (
	"strings"

	"github.com/fredcamaral/termdeck/internal/domain/slides"
)

// raisePrefix marks a scripted interpreter error inside a REPL fence.
const raisePrefix = "!raise "

// sessionPair is one authored command with its captured output.
type sessionPair struct {
	cmd   string
	out   []string
	raise string
}

// captureSession parses fence lines into alternating (command, output)
// buffer elements. Lines prefixed with the primary prompt start a
// command; continuation-prompt lines extend it with an embedded
// newline; everything else is output for the command above it. In REPL
// mode a "!raise Name: message" line scripts an interpreter error for
// the command above it instead of literal output. A trailing command
// with no output stays unpaired (the session prints nothing for it).
func captureSession(sh *slides.Shell, lines []string, prompt, continuation string, repl bool) {
	var pairs []sessionPair

	for _, line := range lines {
		last := len(pairs) - 1

		switch {
		case strings.HasPrefix(line, prompt):
			pairs = append(pairs, sessionPair{cmd: strings.TrimPrefix(line, prompt)})

		case strings.HasPrefix(line, continuation) && last >= 0 &&
			len(pairs[last].out) == 0 && pairs[last].raise == "":
			pairs[last].cmd += "\n" + strings.TrimPrefix(line, continuation)

		case repl && strings.HasPrefix(line, raisePrefix) && last >= 0:
			pairs[last].raise = strings.TrimPrefix(line, raisePrefix)

		default:
			// Output before the first command has no pairing; drop it.
			if last < 0 {
				continue
			}
			pairs[last].out = append(pairs[last].out, line)
		}
	}

	for i, p := range pairs {
		sh.Append(p.cmd)

		if p.raise != "" {
			name, message := splitRaise(p.raise)
			sh.Throw(name, message)
			continue
		}

		out := strings.Join(p.out, "\n")
		if out == "" && i == len(pairs)-1 {
			// Soft suppression: a trailing command keeps an odd buffer.
			continue
		}
		sh.Append(out)
	}
}

// splitRaise splits "Name: message" into its parts; a missing message
// yields just the error name.
func splitRaise(s string) (name, message string) {
	name, message, found := strings.Cut(s, ":")
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(name), strings.TrimSpace(message)
}
