package engine

import (
	"github.com/dshills/virtkbd/internal/command"
)

// Stack is a LIFO of already-executed commands.
//
// A command is owned by exactly one stack at a time; undo and redo
// transfer ownership between the two stacks, never duplicating an
// instance. Not safe for concurrent use.
type Stack struct {
	items []command.Command
}

// Push puts a command on top of the stack.
func (s *Stack) Push(cmd command.Command) {
	s.items = append(s.items, cmd)
}

// Pop removes and returns the top command. The second return value is
// false when the stack is empty.
func (s *Stack) Pop() (command.Command, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	cmd := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return cmd, true
}

// Len returns the number of commands on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Clear drops every command on the stack.
func (s *Stack) Clear() { s.items = nil }
