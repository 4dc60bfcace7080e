package domain

// Snapshots implements undo/redo over full history snapshots: two LIFO stacks
// of independent record copies and nothing else. Full copies keep restore
// trivially correct; memory cost is bounded by stack depth times the history
// size bound.
//
// Like History, Snapshots belongs to a single session and is not safe for
// concurrent use.
type Snapshots struct {
	undo [][]Calculation
	redo [][]Calculation
}

// NewSnapshots creates a manager with empty stacks.
func NewSnapshots() *Snapshots {
	return &Snapshots{}
}

// SaveState checkpoints the current history onto the undo stack. The redo
// stack is cleared unconditionally: once the timeline diverges, previously
// undone states no longer apply.
func (s *Snapshots) SaveState(current []Calculation) {
	s.undo = append(s.undo, copyRecords(current))
	s.redo = nil
}

// Undo pushes the current history onto the redo stack and returns the most
// recent checkpoint. Fails with ErrNothingToUndo on an empty undo stack.
func (s *Snapshots) Undo(current []Calculation) ([]Calculation, error) {
	if len(s.undo) == 0 {
		return nil, ErrNothingToUndo
	}
	s.redo = append(s.redo, copyRecords(current))
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	return copyRecords(top), nil
}

// Redo pops the most recently undone state, pushes it back onto the undo
// stack, and returns it. Fails with ErrNothingToRedo on an empty redo stack.
func (s *Snapshots) Redo() ([]Calculation, error) {
	if len(s.redo) == 0 {
		return nil, ErrNothingToRedo
	}
	top := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, top)
	return copyRecords(top), nil
}

// CanUndo reports whether the undo stack is non-empty.
func (s *Snapshots) CanUndo() bool {
	return len(s.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (s *Snapshots) CanRedo() bool {
	return len(s.redo) > 0
}

// Clear empties both stacks. Called when the session history is cleared.
func (s *Snapshots) Clear() {
	s.undo = nil
	s.redo = nil
}

func copyRecords(records []Calculation) []Calculation {
	out := make([]Calculation, len(records))
	copy(out, records)
	return out
}
