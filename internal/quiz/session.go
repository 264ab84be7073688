package quiz

import (
	"fmt"
	"math"
)

// DefaultPassFraction is the share of questions needed to pass.
const DefaultPassFraction = 0.6

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseResult:
		return "result"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// NoSelection marks a question that has not been answered yet.
const NoSelection = -1

// Session holds one run through a question set.
type Session struct {
	questions    []Question
	index        int
	score        int
	locked       bool
	selected     int
	phase        Phase
	passFraction float64
}

// Option configures a Session.
type Option func(*Session)

// WithPassFraction overrides DefaultPassFraction.
func WithPassFraction(f float64) Option {
	return func(s *Session) { s.passFraction = f }
}

// NewSession validates and copies questions and loads the first one.
func NewSession(questions []Question, opts ...Option) (*Session, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}
	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}
	s := &Session{questions: qs, passFraction: DefaultPassFraction}
	for _, opt := range opts {
		opt(s)
	}
	if math.IsNaN(s.passFraction) || s.passFraction <= 0 || s.passFraction > 1 {
		return nil, ErrPassFraction
	}
	s.load(0)
	return s, nil
}

// load makes question i current and unlocked.
func (s *Session) load(i int) {
	s.index = i
	s.locked = false
	s.selected = NoSelection
	s.phase = PhaseActive
}

// Select answers the current question with option i. It returns false and
// changes nothing if the question is already answered, the session is
// showing its result, or i is not a valid option.
func (s *Session) Select(i int) bool {
	if s.phase != PhaseActive || s.locked {
		return false
	}
	q := s.questions[s.index]
	if i < 0 || i >= len(q.Options) {
		return false
	}
	s.locked = true
	s.selected = i
	if q.IsCorrect(i) {
		s.score++
	}
	return true
}

// Advance moves past an answered question. Before an answer is locked in
// it is a no-op and returns false.
func (s *Session) Advance() bool {
	if s.phase != PhaseActive || !s.locked {
		return false
	}
	s.index++
	if s.index < len(s.questions) {
		s.load(s.index)
		return true
	}
	s.locked = false
	s.selected = NoSelection
	s.phase = PhaseResult
	return true
}

// Restart returns the session to the state NewSession produced.
func (s *Session) Restart() {
	s.score = 0
	s.load(0)
}

func (s *Session) Phase() Phase  { return s.phase }
func (s *Session) Index() int    { return s.index }
func (s *Session) Score() int    { return s.score }
func (s *Session) Locked() bool  { return s.locked }
func (s *Session) Selected() int { return s.selected }
func (s *Session) Len() int      { return len(s.questions) }

// Current returns the question being asked. ok is false in the result phase.
func (s *Session) Current() (q Question, ok bool) {
	if s.phase != PhaseActive {
		return Question{}, false
	}
	return s.questions[s.index].clone(), true
}

// Progress is the fraction of the set reached, counting the current
// question as reached.
func (s *Session) Progress() float64 {
	if s.phase == PhaseResult {
		return 1
	}
	return float64(s.index+1) / float64(len(s.questions))
}

// Result computes the verdict for the current score.
func (s *Session) Result() Result {
	total := len(s.questions)
	threshold := Threshold(total, s.passFraction)
	return Result{
		Score:     s.score,
		Total:     total,
		Threshold: threshold,
		Passed:    s.score >= threshold,
	}
}

// Threshold is the minimum passing score: ceil(total * fraction).
func Threshold(total int, fraction float64) int {
	// 4*0.6 evaluates to 2.4000000000000004; the epsilon keeps exact
	// products like 5*0.6 from rounding up to the next integer.
	return int(math.Ceil(float64(total)*fraction - 1e-9))
}

// Verdict is the pass/fail outcome of a finished session.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// Result is the summary shown after the last question.
type Result struct {
	Score     int
	Total     int
	Threshold int
	Passed    bool
}

func (r Result) Verdict() Verdict {
	if r.Passed {
		return VerdictPass
	}
	return VerdictFail
}

// Ratio is score / total.
func (r Result) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// ScoreLine formats the score as "s / n".
func (r Result) ScoreLine() string {
	return fmt.Sprintf("%d / %d", r.Score, r.Total)
}
