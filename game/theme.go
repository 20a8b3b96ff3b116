package game

import "image/color"

// ThemeState is a snapshot of the host's color settings the game overrides
// while a session is on screen.
type ThemeState struct {
	Background color.RGBA
	Grid       color.RGBA
	Accent     color.RGBA
}

// Theme is the host-owned color settings surface. The game never owns
// these values; it borrows them for the duration of a session and must
// hand them back exactly as found.
type Theme interface {
	Snapshot() (ThemeState, error)
	Apply(ThemeState) error
}

// ThemeGuard holds the host's pre-session theme state and restores it on
// teardown. Restore is idempotent, so it is safe to both defer it and call
// it again on a clean shutdown path.
type ThemeGuard struct {
	theme    Theme
	saved    ThemeState
	restored bool
}

// AcquireTheme snapshots the current theme state and applies the game
// override. The returned guard must be released with Restore on every exit
// path; defer it immediately so the host is never left with the override
// after a panic.
func AcquireTheme(theme Theme, override ThemeState) (*ThemeGuard, error) {
	saved, err := theme.Snapshot()
	if err != nil {
		return nil, err
	}
	if err := theme.Apply(override); err != nil {
		// Apply may have partially taken effect; put the snapshot back
		// before reporting failure.
		_ = theme.Apply(saved)
		return nil, err
	}
	return &ThemeGuard{theme: theme, saved: saved}, nil
}

// Restore writes the pre-session theme state back to the host. Calls after
// the first are no-ops.
func (g *ThemeGuard) Restore() error {
	if g.restored {
		return nil
	}
	g.restored = true
	return g.theme.Apply(g.saved)
}

// Saved returns the theme state captured at acquisition.
func (g *ThemeGuard) Saved() ThemeState {
	return g.saved
}
