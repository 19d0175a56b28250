package command

import (
	"github.com/dshills/virtkbd/internal/device"
)

// MediaToggle launches the simulated media player.
//
// The prior running flag is captured exactly once, on the first
// execute. Undo closes the player only if this instance's own execute
// performed the false-to-true transition; undoing an execute that found
// the player already running leaves state untouched.
type MediaToggle struct {
	wasRunning bool
	captured   bool
}

// NewMediaToggle builds a MediaToggle. The descriptor argument is ignored.
func NewMediaToggle(string) (Command, error) { return &MediaToggle{}, nil }

func (c *MediaToggle) Execute(state *device.State) string {
	if !c.captured {
		c.wasRunning = state.MediaRunning
		c.captured = true
	}
	if !state.MediaRunning {
		state.MediaRunning = true
		return "media player launched"
	}
	return "media player already running"
}

func (c *MediaToggle) Undo(state *device.State) string {
	if c.captured && !c.wasRunning && state.MediaRunning {
		state.MediaRunning = false
		return "media player closed"
	}
	return "media player was not running"
}

// Description returns a human-readable description.
func (c *MediaToggle) Description() string { return "media player" }
