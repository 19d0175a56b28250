package command

import (
	"errors"
	"fmt"
)

// Reference command kinds.
const (
	KindChar        = "char"
	KindVolumeUp    = "volume_up"
	KindVolumeDown  = "volume_down"
	KindMediaPlayer = "media_player"
)

// ErrUnknownCommand indicates a descriptor named an unregistered kind.
var ErrUnknownCommand = errors.New("unknown command")

// Constructor builds a command from a descriptor argument.
type Constructor func(arg string) (Command, error)

// Registry maps command kind names to constructors.
//
// It is assembled by the host before the first press and treated as
// read-only afterwards; it carries no locking of its own.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register adds a constructor for a kind name, overwriting any prior
// registration for that name.
func (r *Registry) Register(name string, ctor Constructor) {
	r.ctors[name] = ctor
}

// Create builds a fresh command from a descriptor. Instances are never
// reused across presses.
func (r *Registry) Create(desc Descriptor) (Command, error) {
	ctor, ok := r.ctors[desc.Command]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, desc.Command)
	}
	cmd, err := ctor(desc.Arg)
	if err != nil {
		return nil, fmt.Errorf("creating %s command: %w", desc.Command, err)
	}
	return cmd, nil
}

// Kinds returns the registered kind names.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		kinds = append(kinds, name)
	}
	return kinds
}

// RegisterDefaults installs the reference command kinds.
func RegisterDefaults(r *Registry) {
	r.Register(KindChar, NewPrintChar)
	r.Register(KindVolumeUp, NewVolumeUp)
	r.Register(KindVolumeDown, NewVolumeDown)
	r.Register(KindMediaPlayer, NewMediaToggle)
}
