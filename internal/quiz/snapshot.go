package quiz

// Mark is how an option should be shown once its question is answered.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// Snapshot is a read-only copy of a session, safe to hand to a renderer.
type Snapshot struct {
	Phase    Phase
	Index    int
	Total    int
	Score    int
	Locked   bool
	Selected int
	Question Question
	Progress float64
	Result   Result
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    s.phase,
		Index:    s.index,
		Total:    len(s.questions),
		Score:    s.score,
		Locked:   s.locked,
		Selected: s.selected,
		Progress: s.Progress(),
		Result:   s.Result(),
	}
	if q, ok := s.Current(); ok {
		snap.Question = q
	}
	return snap
}

// Mark returns the highlight for option i. Nothing is marked until the
// question is locked; then the correct option is always marked, and a
// wrong selection is marked as such.
func (snap Snapshot) Mark(i int) Mark {
	if !snap.Locked {
		return MarkNone
	}
	if snap.Question.IsCorrect(i) {
		return MarkCorrect
	}
	if i == snap.Selected {
		return MarkWrong
	}
	return MarkNone
}

// Selectable reports whether options still accept input.
func (snap Snapshot) Selectable() bool {
	return snap.Phase == PhaseActive && !snap.Locked
}
