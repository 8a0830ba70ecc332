package slides

import (
	"unicode/utf8"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// Shell simulates an interactive terminal session. Its buffer alternates
// (command, output) elements: the command is typed out one character per
// keypress, and a confirm key on a fully revealed command prints the
// paired output and moves on to the next command. Specializations such
// as the Python interpreter differ only by prompts and banner.
type Shell struct {
	base
	prompt       string
	continuation string
	banner       string

	cmd        string
	pos        int
	terminated bool
}

// NewShell creates a simulated shell session slide.
func NewShell() *Shell {
	return &Shell{
		base:         newBase("shell", true),
		prompt:       "$ ",
		continuation: "> ",
	}
}

// NewPythonShell creates a simulated Python interpreter session: a Shell
// configured with REPL prompts. Use SetBanner for the interpreter
// greeting and Throw to script an interpreter error.
func NewPythonShell() *Shell {
	return &Shell{
		base:         newBase("pyshell", true),
		prompt:       ">>> ",
		continuation: "... ",
	}
}

// SetPrompts overrides the primary and continuation prompt strings.
func (sh *Shell) SetPrompts(prompt, continuation string) {
	if prompt != "" {
		sh.prompt = prompt
	}
	if continuation != "" {
		sh.continuation = continuation
	}
}

// SetBanner sets a banner written once before the first prompt.
func (sh *Shell) SetBanner(banner string) {
	sh.banner = banner
}

// Throw is an authoring-time helper that appends a traceback-shaped
// output block mimicking an interpreter error, paired with the command
// authored before it.
func (sh *Shell) Throw(name, message string) {
	sh.Append("Traceback (most recent call last):\n" +
		"  File \"<stdin>\", line 1, in <module>\n" +
		name + ": " + message)
}

// Terminated reports whether the session has run out of commands.
// Termination is only observed by the player on the next confirm key.
func (sh *Shell) Terminated() bool { return sh.terminated }

// Prepare writes the banner, if any, and the first prompt.
func (sh *Shell) Prepare(s ports.Surface) error {
	if sh.banner != "" {
		s.Write(sh.banner+"\n", ports.Attr{})
	}
	sh.nextCommand(s)
	return nil
}

// nextCommand writes the primary prompt and stages the next buffered
// command. An empty buffer marks the session terminated without ending
// the slide.
func (sh *Shell) nextCommand(s ports.Surface) {
	s.Write(sh.prompt, ports.Attr{})

	if cmd, ok := sh.pop(); ok {
		sh.cmd = cmd
		sh.pos = 0
		return
	}
	sh.terminated = true
}

// Process advances the session by exactly one step. A non-confirm key
// reveals one command character (embedded newlines are held back until
// confirmed). A confirm key executes a fully revealed command, reveals
// an embedded newline together with the continuation prompt, or, once
// the session is terminated, ends the slide.
func (sh *Shell) Process(s ports.Surface, ev entities.KeyEvent) (Status, error) {
	if ev.IsConfirm() {
		if sh.terminated {
			return StatusFinished, nil
		}

		if sh.pos >= len(sh.cmd) {
			sh.execute(s)
			return StatusContinue, nil
		}

		if sh.cmd[sh.pos] == '\n' {
			s.Write("\n"+sh.continuation, ports.Attr{})
			sh.pos++
			return StatusContinue, nil
		}
		// Confirm mid-command falls through to a single reveal step.
	}

	if sh.terminated {
		return StatusContinue, nil
	}

	if sh.pos < len(sh.cmd) && sh.cmd[sh.pos] != '\n' {
		r, size := utf8.DecodeRuneInString(sh.cmd[sh.pos:])
		s.Write(string(r), ports.Attr{})
		sh.pos += size
	}

	return StatusContinue, nil
}

// execute prints the output paired with the current command and stages
// the next one. A trailing command with no paired output prints nothing.
func (sh *Shell) execute(s ports.Surface) {
	output, _ := sh.pop()

	s.Write("\n", ports.Attr{})
	if output != "" {
		s.Write(output+"\n", ports.Attr{})
	}

	sh.nextCommand(s)
}
