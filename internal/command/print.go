package command

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dshills/virtkbd/internal/device"
)

// unsetPosition marks a PrintChar that has not executed yet.
const unsetPosition = -1

// PrintChar inserts a single character into the output buffer.
//
// The insertion position is captured from the cursor on the first
// execute and is fixed for the instance's lifetime: a later redo
// reinserts at the original position regardless of where the cursor has
// since moved.
type PrintChar struct {
	char     rune
	position int // rune index, unsetPosition until first execute
}

// NewPrintChar builds a PrintChar from a descriptor argument.
// The argument must carry the character to insert.
func NewPrintChar(arg string) (Command, error) {
	if arg == "" {
		return nil, errors.New("char command requires an argument")
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return &PrintChar{char: r, position: unsetPosition}, nil
}

// Execute inserts the character at the captured position and places the
// cursor after it. The result message is the whole output buffer.
func (c *PrintChar) Execute(state *device.State) string {
	if c.position == unsetPosition {
		c.position = state.Cursor
	}

	runes := []rune(state.Text)
	idx := c.position
	if idx > len(runes) {
		idx = len(runes)
	}
	runes = append(runes[:idx], append([]rune{c.char}, runes[idx:]...)...)
	state.Text = string(runes)

	state.Cursor = c.position + 1
	if state.Cursor > len(runes) {
		state.Cursor = len(runes)
	}
	return state.Text
}

// Undo removes the character at the captured position and resets the
// cursor there. If the position is now past the end of the buffer the
// buffer is left unchanged.
func (c *PrintChar) Undo(state *device.State) string {
	runes := []rune(state.Text)
	if c.position != unsetPosition && c.position < len(runes) {
		state.Text = string(append(runes[:c.position], runes[c.position+1:]...))
		state.Cursor = c.position
	}
	return state.Text
}

// Description returns a human-readable description.
func (c *PrintChar) Description() string {
	return fmt.Sprintf("print %q", c.char)
}
