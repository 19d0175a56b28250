package command

import (
	"fmt"

	"github.com/dshills/virtkbd/internal/device"
)

// Command represents a reversible action against the device state.
type Command interface {
	// Execute performs the action, mutating state in place, and returns
	// a result message for the log sink.
	Execute(state *device.State) string

	// Undo reverses the action and returns a result message.
	// It is only called after Execute on the same instance.
	Undo(state *device.State) string

	// Description returns a human-readable description of the command.
	Description() string
}

// Descriptor identifies a command kind plus its optional argument.
// Descriptors are serializable and immutable once read.
type Descriptor struct {
	Command string `json:"command"`
	Arg     string `json:"arg,omitempty"`
}

// String renders the descriptor for log output.
func (d Descriptor) String() string {
	if d.Arg == "" {
		return d.Command
	}
	return fmt.Sprintf("%s(%q)", d.Command, d.Arg)
}
