// Package device holds the mutable state of the simulated keyboard.
package device

// DefaultVolume is the volume level a freshly created device starts at.
const DefaultVolume = 50

// State is the simulated output device acted on by commands.
//
// It is a plain record: bounds enforcement (cursor within the text,
// volume within [0,100]) is the responsibility of the commands that
// mutate it. A State is exclusively owned by one engine instance and is
// not safe for concurrent use.
type State struct {
	// Text is the simulated output buffer.
	Text string

	// Cursor is the insertion point, in runes. 0 <= Cursor <= rune length of Text.
	Cursor int

	// Volume is the simulated volume level, 0..100.
	Volume int

	// MediaRunning reports whether the simulated media player is running.
	MediaRunning bool
}

// NewState creates a device state with an empty buffer and default volume.
func NewState() *State {
	return &State{Volume: DefaultVolume}
}
