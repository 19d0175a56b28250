// Package engine orchestrates the simulated keyboard: key dispatch,
// command construction, execution against the device state, and the
// undo/redo history.
//
// Every operation is synchronous and runs to completion before the next
// is accepted. The engine, its stacks, and its binding map are owned by
// a single caller; hosts needing concurrent access must serialize calls
// externally. The undo/redo history lives only for the engine's
// lifetime and is never persisted.
package engine
