package quiz

import (
	"errors"
	"fmt"
)

// Construction errors. Everything else a session sees is ignored by policy.
var (
	// ErrNoQuestions indicates an empty question set.
	ErrNoQuestions = errors.New("quiz: question set is empty")

	// ErrEmptyPrompt indicates a question without prompt text.
	ErrEmptyPrompt = errors.New("quiz: question prompt is empty")

	// ErrTooFewOptions indicates a question with fewer than two options.
	ErrTooFewOptions = errors.New("quiz: question needs at least two options")

	// ErrAnswerRange indicates a correct-option index outside the option list.
	ErrAnswerRange = errors.New("quiz: answer index out of range")

	// ErrPassFraction indicates a pass fraction outside (0, 1].
	ErrPassFraction = errors.New("quiz: pass fraction must be in (0, 1]")
)

// QuestionError wraps a validation error with the position of the
// offending question in its set.
type QuestionError struct {
	Index   int
	Wrapped error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %d: %v", e.Index+1, e.Wrapped)
}

func (e *QuestionError) Unwrap() error {
	return e.Wrapped
}
