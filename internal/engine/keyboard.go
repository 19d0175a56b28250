package engine

import (
	"github.com/dshills/virtkbd/internal/command"
	"github.com/dshills/virtkbd/internal/device"
	"github.com/dshills/virtkbd/internal/keymap"
	"github.com/dshills/virtkbd/internal/logging"
)

// Keyboard is the input engine.
//
// It maps key identifiers to command descriptors, builds commands
// through the registry, executes them against the device state, and
// keeps the undo/redo history. Bindings are loaded once at construction
// and persisted on every Bind; device state and history are
// process-lifetime only.
type Keyboard struct {
	state    *device.State
	registry *command.Registry
	store    *keymap.Store
	bindings map[string]command.Descriptor
	undo     Stack
	redo     Stack
	log      *logging.Logger
}

// New creates a keyboard backed by the given store and registry.
// A failure to load persisted bindings is logged and the keyboard
// starts with an empty map.
func New(store *keymap.Store, registry *command.Registry, log *logging.Logger) *Keyboard {
	bindings, err := store.Load()
	if err != nil {
		log.Logf("error: %v", err)
	}
	return &Keyboard{
		state:    device.NewState(),
		registry: registry,
		store:    store,
		bindings: bindings,
		log:      log,
	}
}

// State exposes the device state to the host. The engine remains the
// only mutator; hosts read it for display.
func (k *Keyboard) State() *device.State { return k.state }

// Bindings returns a copy of the current binding map.
func (k *Keyboard) Bindings() map[string]command.Descriptor {
	out := make(map[string]command.Descriptor, len(k.bindings))
	for key, desc := range k.bindings {
		out[key] = desc
	}
	return out
}

// Bind associates a key with a descriptor, persisting the whole binding
// document immediately. Keys are unique; the last write wins. A
// persistence failure is logged and the in-memory binding stays
// authoritative.
func (k *Keyboard) Bind(key string, desc command.Descriptor) {
	k.bindings[key] = desc
	if err := k.store.Save(k.bindings); err != nil {
		k.log.Logf("error: %v", err)
	}
	k.log.Logf("set: %s -> %s", key, desc)
}

// Press dispatches a key: descriptor lookup, command construction,
// execution, then history bookkeeping. An unbound key or a factory
// failure is logged and leaves state and stacks untouched.
func (k *Keyboard) Press(key string) {
	desc, ok := k.bindings[key]
	if !ok {
		k.log.Logf("unknown key: %s", key)
		return
	}

	cmd, err := k.registry.Create(desc)
	if err != nil {
		k.log.Logf("error: %v", err)
		return
	}

	result := cmd.Execute(k.state)
	k.undo.Push(cmd)
	k.redo.Clear()

	k.log.Log(key)
	k.log.Log(result)
}

// Undo reverses the most recent executed command and moves it to the
// redo stack. An empty history is a terminal no-op.
func (k *Keyboard) Undo() {
	k.log.Log("undo")
	cmd, ok := k.undo.Pop()
	if !ok {
		k.log.Log("nothing to undo")
		return
	}
	result := cmd.Undo(k.state)
	k.redo.Push(cmd)
	k.log.Log(result)
}

// Redo re-executes the most recently undone command and moves it back
// to the undo stack.
func (k *Keyboard) Redo() {
	k.log.Log("redo")
	cmd, ok := k.redo.Pop()
	if !ok {
		k.log.Log("nothing to redo")
		return
	}
	result := cmd.Execute(k.state)
	k.undo.Push(cmd)
	k.log.Log(result)
}

// UndoCount returns the number of commands available to undo.
func (k *Keyboard) UndoCount() int { return k.undo.Len() }

// RedoCount returns the number of commands available to redo.
func (k *Keyboard) RedoCount() int { return k.redo.Len() }

// Reload replaces the in-memory bindings with the persisted document.
// Used by hosts that watch the binding file for external edits; the
// undo/redo history is untouched.
func (k *Keyboard) Reload() {
	bindings, err := k.store.Load()
	if err != nil {
		k.log.Logf("error: %v", err)
		return
	}
	k.bindings = bindings
	k.log.Logf("bindings reloaded (%d keys)", len(bindings))
}
