package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/termdeck/internal/adapters/secondary/term"
	"github.com/fredcamaral/termdeck/internal/domain/entities"
)

func enter() entities.KeyEvent { return entities.KeyEvent{Type: entities.KeyEnter} }
func space() entities.KeyEvent { return entities.KeyEvent{Type: entities.KeySpace} }
func letter(r rune) entities.KeyEvent {
	return entities.KeyEvent{Type: entities.KeyRune, Rune: r}
}

func TestBullets_Prepare(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	b := NewBullets("Topics")

	require.NoError(t, b.Prepare(surface))

	ops := surface.Ops()
	require.Len(t, ops, 4)
	assert.Equal(t, `move(0,0)`, ops[0])
	assert.Equal(t, `write("Topics", plain)`, ops[1])
	assert.Equal(t, `move(1,0)`, ops[2])
	assert.Equal(t, `write("======", plain)`, ops[3], "rule matches title width")
}

func TestBullets_RevealsItemsInOrder(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	b := NewBullets("Topics")
	b.Append("alpha", "beta", "gamma")

	require.NoError(t, b.Prepare(surface))
	surface.Reset()

	// First reveal: new item is emphasized, cursor at line start.
	status, err := b.Process(surface, enter())
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, status)
	assert.Contains(t, surface.Output(), `write("* alpha", bold)`)

	// Second reveal: previous item re-drawn plain, new one emphasized.
	surface.Reset()
	_, err = b.Process(surface, enter())
	require.NoError(t, err)
	assert.Contains(t, surface.Output(), "deleteline(3)")
	assert.Contains(t, surface.Output(), `write("* alpha", plain)`)
	assert.Contains(t, surface.Output(), `write("* beta", bold)`)

	assert.Equal(t, 1, b.BufferLen())
}

func TestBullets_ScenarioThreeItems(t *testing.T) {
	// Three buffered items need exactly three advance events; the final
	// one parks the cursor at the bottom-right corner.
	surface := term.NewVirtualSurface(24, 80)
	b := NewBullets("Topics")
	b.Append("alpha", "beta", "gamma")

	require.NoError(t, b.Prepare(surface))

	for i := 0; i < 3; i++ {
		status, err := b.Process(surface, enter())
		require.NoError(t, err)
		assert.Equal(t, StatusContinue, status)
	}

	assert.Equal(t, 0, b.BufferLen())

	row, col := surface.Cursor()
	assert.Equal(t, 23, row)
	assert.Equal(t, 79, col)
}

func TestBullets_AdvancePastEmptyBufferIsAFault(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	b := NewBullets("Topics")
	b.Append("only")

	require.NoError(t, b.Prepare(surface))

	_, err := b.Process(surface, enter())
	require.NoError(t, err)

	_, err = b.Process(surface, enter())
	require.ErrorIs(t, err, ErrBufferExhausted)
}

func TestBullets_SpaceAdvances(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	b := NewBullets("Topics")
	b.Append("alpha")

	require.NoError(t, b.Prepare(surface))

	_, err := b.Process(surface, space())
	require.NoError(t, err)
	assert.Equal(t, 0, b.BufferLen())
}

func TestBullets_OtherKeysAreIgnored(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	b := NewBullets("Topics")
	b.Append("alpha")

	require.NoError(t, b.Prepare(surface))
	surface.Reset()

	status, err := b.Process(surface, letter('x'))
	require.NoError(t, err)
	assert.Equal(t, StatusContinue, status)
	assert.Empty(t, surface.Output())
	assert.Equal(t, 1, b.BufferLen())
}

func TestBullets_Deterministic(t *testing.T) {
	// Replaying the identical event sequence against a fresh slide with
	// the same buffer produces identical output.
	run := func() string {
		surface := term.NewVirtualSurface(24, 80)
		b := NewBullets("Topics")
		b.Append("alpha", "beta", "gamma")

		require.NoError(t, b.Prepare(surface))
		for _, ev := range []entities.KeyEvent{enter(), letter('k'), space(), enter()} {
			_, err := b.Process(surface, ev)
			require.NoError(t, err)
		}
		return surface.Output()
	}

	assert.Equal(t, run(), run())
}

func TestBullets_CustomGlyphs(t *testing.T) {
	surface := term.NewVirtualSurface(24, 80)
	b := NewBullets("ab")
	b.SetGlyphs("-", "~")
	b.Append("alpha")

	require.NoError(t, b.Prepare(surface))

	assert.Contains(t, surface.Output(), `write("~~", plain)`)

	_, err := b.Process(surface, enter())
	require.NoError(t, err)
	assert.Contains(t, surface.Output(), `write("- alpha", bold)`)
}
