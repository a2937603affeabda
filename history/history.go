// Package history keeps the bounded stack of pre-move snapshots that backs
// undo. The stack exclusively owns its entries: every push and every pop
// crosses a copy boundary, so a stored snapshot never aliases live game state.
package history

import (
	"klondike/game"
	"klondike/meta"
)

type Stack struct {
	snapshots []*game.GameState
	maxDepth  int
}

// NewStack returns a stack bounded to maxDepth snapshots. A non-positive
// depth falls back to the default.
func NewStack(maxDepth int) *Stack {
	if maxDepth <= 0 {
		maxDepth = meta.MAX_UNDO_DEPTH
	}
	return &Stack{maxDepth: maxDepth}
}

// Push stores an independent deep copy of state. Pushing nil is a silent
// no-op. When the stack is full the oldest snapshot is evicted, never the
// most recent.
func (s *Stack) Push(state *game.GameState) {
	if state == nil {
		return
	}
	if len(s.snapshots) >= s.maxDepth {
		n := copy(s.snapshots, s.snapshots[1:])
		s.snapshots = s.snapshots[:n]
	}
	s.snapshots = append(s.snapshots, state.Copy())
}

// CanUndo reports whether a snapshot is available.
func (s *Stack) CanUndo() bool {
	return len(s.snapshots) > 0
}

// Pop removes the most recent snapshot and returns an independent copy of it,
// or nil when the stack is empty.
func (s *Stack) Pop() *game.GameState {
	if len(s.snapshots) == 0 {
		return nil
	}
	last := s.snapshots[len(s.snapshots)-1]
	s.snapshots = s.snapshots[:len(s.snapshots)-1]
	return last.Copy()
}

// Drop discards the most recent snapshot without copying it out. Used when a
// move turned out not to change state after its snapshot was taken.
func (s *Stack) Drop() {
	if len(s.snapshots) > 0 {
		s.snapshots = s.snapshots[:len(s.snapshots)-1]
	}
}

// Reset clears the stack; called whenever a new deal starts so history never
// crosses deals.
func (s *Stack) Reset() {
	s.snapshots = nil
}

// Len returns the number of stored snapshots.
func (s *Stack) Len() int {
	return len(s.snapshots)
}
