package game_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
)

// fakeTheme records every Apply so tests can inspect the order of writes.
type fakeTheme struct {
	current  game.ThemeState
	applied  []game.ThemeState
	snapErr  error
	applyErr error
}

func (f *fakeTheme) Snapshot() (game.ThemeState, error) {
	if f.snapErr != nil {
		return game.ThemeState{}, f.snapErr
	}
	return f.current, nil
}

func (f *fakeTheme) Apply(st game.ThemeState) error {
	f.applied = append(f.applied, st)
	if f.applyErr != nil {
		return f.applyErr
	}
	f.current = st
	return nil
}

var (
	hostTheme = game.ThemeState{
		Background: color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff},
		Grid:       color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
		Accent:     color.RGBA{R: 0x5a, G: 0x82, B: 0xc4, A: 0xff},
	}
	gameTheme = game.ThemeState{
		Background: color.RGBA{A: 0xff},
		Grid:       color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Accent:     color.RGBA{R: 0xff, G: 0xd4, A: 0xff},
	}
)

func TestAcquireThemeAppliesOverride(t *testing.T) {
	theme := &fakeTheme{current: hostTheme}

	guard, err := game.AcquireTheme(theme, gameTheme)
	require.NoError(t, err)

	assert.Equal(t, gameTheme, theme.current)
	assert.Equal(t, hostTheme, guard.Saved())
}

func TestThemeGuardRestore(t *testing.T) {
	theme := &fakeTheme{current: hostTheme}
	guard, err := game.AcquireTheme(theme, gameTheme)
	require.NoError(t, err)

	require.NoError(t, guard.Restore())
	assert.Equal(t, hostTheme, theme.current)
}

func TestThemeGuardRestoreIsIdempotent(t *testing.T) {
	theme := &fakeTheme{current: hostTheme}
	guard, err := game.AcquireTheme(theme, gameTheme)
	require.NoError(t, err)

	require.NoError(t, guard.Restore())
	writes := len(theme.applied)

	require.NoError(t, guard.Restore())
	require.NoError(t, guard.Restore())
	assert.Equal(t, writes, len(theme.applied), "repeat restores must not touch the host")
}

func TestThemeGuardRestoresOnPanicPath(t *testing.T) {
	theme := &fakeTheme{current: hostTheme}

	func() {
		defer func() { _ = recover() }()

		guard, err := game.AcquireTheme(theme, gameTheme)
		require.NoError(t, err)
		defer guard.Restore()

		panic("session blew up")
	}()

	assert.Equal(t, hostTheme, theme.current)
}

func TestAcquireThemeSnapshotError(t *testing.T) {
	theme := &fakeTheme{snapErr: errors.New("host unavailable")}

	guard, err := game.AcquireTheme(theme, gameTheme)
	assert.Error(t, err)
	assert.Nil(t, guard)
	assert.Empty(t, theme.applied, "no writes after a failed snapshot")
}

func TestAcquireThemeApplyErrorRollsBack(t *testing.T) {
	theme := &fakeTheme{current: hostTheme, applyErr: errors.New("write rejected")}

	guard, err := game.AcquireTheme(theme, gameTheme)
	assert.Error(t, err)
	assert.Nil(t, guard)

	// Failed override is followed by a rollback write of the snapshot.
	require.Len(t, theme.applied, 2)
	assert.Equal(t, gameTheme, theme.applied[0])
	assert.Equal(t, hostTheme, theme.applied[1])
}
