// Package command defines the reversible actions the input engine
// executes against the device state, and the registry that builds them
// from serialized descriptors.
//
// Each command owns exactly the state it needs to invert its own
// effect, captured on first execute and never re-derived afterwards.
// Execute and Undo alternate strictly per instance under the engine's
// stack discipline.
package command
