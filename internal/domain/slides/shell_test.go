package slides

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/termdeck/internal/adapters/secondary/term"
	"github.com/fredcamaral/termdeck/internal/domain/entities"
)

func TestShell_ScenarioEchoHi(t *testing.T) {
	// Typing the 7 characters of "echo hi" one non-confirm event at a
	// time reveals them one by one; the 8th (confirm) event prints "hi"
	// and terminates the session; a 9th confirm ends the slide.
	surface := term.NewVirtualSurface(24, 80)
	sh := NewShell()
	sh.Append("echo hi", "hi")

	require.NoError(t, sh.Prepare(surface))
	assert.Contains(t, surface.Output(), `write("$ ", plain)`)

	for i, want := range []string{"e", "c", "h", "o", " ", "h", "i"} {
		surface.Reset()
		status, err := sh.Process(surface, letter('x'))
		require.NoError(t, err)
		assert.Equal(t, StatusContinue, status)
		assert.Equal(t, fmt.Sprintf("write(%q, plain)", want), surface.Output(), "event %d", i+1)
	}

	surface.Reset()
	status, err := sh.Process(surface, enter())
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, status)
	assert.Contains(t, surface.Output(), `write("hi\n", plain)`)
	assert.True(t, sh.Terminated())

	status, err = sh.Process(surface, enter())
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, status)
}

func TestShell_OutputNeverBeforeFullReveal(t *testing.T) {
	// The paired output must not appear until every command character
	// has been revealed, no matter how many confirms arrive early.
	surface := term.NewVirtualSurface(24, 80)
	sh := NewShell()
	sh.Append("ls", "README.md")

	require.NoError(t, sh.Prepare(surface))
	surface.Reset()

	// A confirm mid-command reveals one character, never the output.
	_, err := sh.Process(surface, enter())
	require.NoError(t, err)
	assert.NotContains(t, surface.Output(), "README.md")

	_, err = sh.Process(surface, letter('x'))
	require.NoError(t, err)
	assert.NotContains(t, surface.Output(), "README.md")

	_, err = sh.Process(surface, enter())
	require.NoError(t, err)
	assert.Contains(t, surface.Output(), `write("README.md\n", plain)`)
}

func TestShell_RevealCountEqualsCommandLength(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	sh := NewShell()
	cmd := "make gettext"
	sh.Append(cmd, "done")

	require.NoError(t, sh.Prepare(surface))
	surface.Reset()

	reveals := 0
	for !strings.Contains(surface.Output(), "done") {
		require.Less(t, reveals, 100, "output never appeared")
		before := len(surface.Ops())
		_, err := sh.Process(surface, letter('x'))
		require.NoError(t, err)
		if len(surface.Ops()) > before {
			reveals++
			continue
		}
		// Command fully revealed; only a confirm makes progress now.
		_, err = sh.Process(surface, enter())
		require.NoError(t, err)
	}

	assert.Equal(t, len(cmd), reveals)
}

func TestShell_EmbeddedNewlineNeedsConfirm(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	sh := NewShell()
	sh.Append("a\nb", "ok")

	require.NoError(t, sh.Prepare(surface))
	surface.Reset()

	// Reveal "a".
	_, err := sh.Process(surface, letter('x'))
	require.NoError(t, err)

	// Non-confirm keys do not reveal the embedded newline.
	surface.Reset()
	for i := 0; i < 3; i++ {
		_, err = sh.Process(surface, letter('x'))
		require.NoError(t, err)
	}
	assert.Empty(t, surface.Output())

	// The confirm reveals the newline plus the continuation prompt as
	// one unit.
	_, err = sh.Process(surface, enter())
	require.NoError(t, err)
	assert.Equal(t, `write("\n> ", plain)`, surface.Output())

	// Reveal "b", then execute.
	_, err = sh.Process(surface, letter('x'))
	require.NoError(t, err)
	surface.Reset()
	_, err = sh.Process(surface, enter())
	require.NoError(t, err)
	assert.Contains(t, surface.Output(), `write("ok\n", plain)`)
}

func TestShell_EmptyBufferTerminatesImmediately(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	sh := NewShell()

	require.NoError(t, sh.Prepare(surface))
	assert.True(t, sh.Terminated())

	status, err := sh.Process(surface, enter())
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, status)
}

func TestShell_TrailingCommandWithoutOutput(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	sh := NewShell()
	sh.Append("python")

	require.NoError(t, sh.Prepare(surface))
	for range "python" {
		_, err := sh.Process(surface, letter('x'))
		require.NoError(t, err)
	}

	surface.Reset()
	status, err := sh.Process(surface, enter())
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, status)
	assert.Equal(t, `write("\n", plain)`+"\n"+`write("$ ", plain)`, surface.Output())
	assert.True(t, sh.Terminated())
}

func TestShell_BufferShrinksMonotonically(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	sh := NewShell()
	sh.Append("ab", "out1", "cd", "out2")

	require.NoError(t, sh.Prepare(surface))
	require.Equal(t, 3, sh.BufferLen(), "prepare stages the first command")

	seen := sh.BufferLen()
	events := []entities.KeyEvent{
		letter('x'), letter('x'), enter(), // ab -> out1
		letter('x'), letter('x'), enter(), // cd -> out2
		enter(),
	}
	for _, ev := range events {
		_, err := sh.Process(surface, ev)
		require.NoError(t, err)
		assert.LessOrEqual(t, sh.BufferLen(), seen, "buffer never grows")
		seen = sh.BufferLen()
	}
	assert.Equal(t, 0, sh.BufferLen())
}

func TestPythonShell_Prompts(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	py := NewPythonShell()
	py.Append("1 + 1", "2")

	require.NoError(t, py.Prepare(surface))
	assert.Contains(t, surface.Output(), `write(">>> ", plain)`)
	assert.Equal(t, "pyshell", py.Kind())
}

func TestPythonShell_Banner(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	py := NewPythonShell()
	py.SetBanner("Python 2.7.2 (default)")

	require.NoError(t, py.Prepare(surface))

	ops := surface.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, `write("Python 2.7.2 (default)\n", plain)`, ops[0])
}

func TestPythonShell_ScenarioThrow(t *testing.T) {
	// A scripted division-by-zero appends a 3-line traceback-shaped
	// block as the output paired with the command authored before it.
	surface := term.NewVirtualSurface(24, 80)
	py := NewPythonShell()
	py.Append("1 / 0")
	py.Throw("ZeroDivisionError", "integer division or modulo by zero")

	require.NoError(t, py.Prepare(surface))

	for range "1 / 0" {
		_, err := py.Process(surface, letter('x'))
		require.NoError(t, err)
	}

	surface.Reset()
	_, err := py.Process(surface, enter())
	require.NoError(t, err)

	out := surface.Output()
	assert.Contains(t, out, "Traceback (most recent call last):")
	assert.Contains(t, out, `File \"<stdin>\", line 1, in <module>`)
	assert.Contains(t, out, "ZeroDivisionError: integer division or modulo by zero")

	// Traceback block is three lines.
	start := strings.Index(out, "Traceback")
	end := strings.Index(out, "modulo by zero")
	require.Greater(t, end, start)
	assert.Equal(t, 2, strings.Count(out[start:end], `\n`))
}

func TestShell_CursorVisible(t *testing.T) {
	assert.True(t, NewShell().CursorVisible())
	assert.True(t, NewPythonShell().CursorVisible())
	assert.False(t, NewChapter().CursorVisible())
	assert.False(t, NewBullets("t").CursorVisible())
}
