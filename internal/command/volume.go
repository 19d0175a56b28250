package command

import (
	"fmt"

	"github.com/dshills/virtkbd/internal/device"
)

// VolumeStep is the delta applied by a single volume command.
const VolumeStep = 20

// VolumeUp raises the volume by VolumeStep, clamped to 100.
//
// Undo applies the opposite delta, also clamped. After clamping this is
// deliberately not a true inverse: 90 +20 clamps to 100, and undoing
// yields 80, losing the clamped 10. The loss is part of the contract.
type VolumeUp struct{}

// NewVolumeUp builds a VolumeUp. The descriptor argument is ignored.
func NewVolumeUp(string) (Command, error) { return &VolumeUp{}, nil }

func (c *VolumeUp) Execute(state *device.State) string {
	return raiseVolume(state)
}

func (c *VolumeUp) Undo(state *device.State) string {
	return lowerVolume(state)
}

// Description returns a human-readable description.
func (c *VolumeUp) Description() string { return "volume up" }

// VolumeDown lowers the volume by VolumeStep, clamped to 0.
// Its undo is lossy in the same way as VolumeUp's.
type VolumeDown struct{}

// NewVolumeDown builds a VolumeDown. The descriptor argument is ignored.
func NewVolumeDown(string) (Command, error) { return &VolumeDown{}, nil }

func (c *VolumeDown) Execute(state *device.State) string {
	return lowerVolume(state)
}

func (c *VolumeDown) Undo(state *device.State) string {
	return raiseVolume(state)
}

// Description returns a human-readable description.
func (c *VolumeDown) Description() string { return "volume down" }

func raiseVolume(state *device.State) string {
	state.Volume += VolumeStep
	if state.Volume > 100 {
		state.Volume = 100
	}
	return fmt.Sprintf("volume increased +%d%% (current: %d%%)", VolumeStep, state.Volume)
}

func lowerVolume(state *device.State) string {
	state.Volume -= VolumeStep
	if state.Volume < 0 {
		state.Volume = 0
	}
	return fmt.Sprintf("volume decreased -%d%% (current: %d%%)", VolumeStep, state.Volume)
}
