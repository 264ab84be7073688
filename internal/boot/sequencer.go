// Package boot reveals a fixed script of lines one at a time and signals
// once every line is shown.
package boot

import (
	"context"
	"errors"
	"time"
)

// DefaultDelay is the pause between two revealed lines.
const DefaultDelay = 600 * time.Millisecond

// ErrStarted is returned by Start on a sequencer that already ran.
var ErrStarted = errors.New("boot: sequencer already started")

// DefaultScript is the boot text shown before the quiz.
var DefaultScript = []string{
	"[BOOT SEQUENCE INITIATED]",
	"Loading system modules...",
	"Connecting to Neural Database...",
	"Decrypting quiz data packets...",
	"Establishing secure link...",
	"Initializing user interface...",
	"System Ready.",
	"Press START to begin the test.",
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRevealing
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRevealing:
		return "revealing"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// Sequencer is the reveal state machine. Scheduling is left to the caller:
// call Reveal once per Delay after Start. Not safe for concurrent use.
type Sequencer struct {
	script     []string
	revealed   int
	delay      time.Duration
	phase      Phase
	onComplete func()
}

// New returns an idle sequencer. onComplete may be nil.
func New(onComplete func()) *Sequencer {
	return &Sequencer{onComplete: onComplete}
}

// Start loads the script and reveals its first line. An empty script
// completes immediately.
func (s *Sequencer) Start(lines []string, delay time.Duration) error {
	if s.phase != PhaseIdle {
		return ErrStarted
	}
	s.script = make([]string, len(lines))
	copy(s.script, lines)
	s.delay = delay
	s.phase = PhaseRevealing
	if len(s.script) == 0 {
		s.complete()
		return nil
	}
	s.Reveal()
	return nil
}

// Reveal shows the next line. It returns false when there is nothing left
// to reveal or the sequencer was never started.
func (s *Sequencer) Reveal() bool {
	if s.phase != PhaseRevealing {
		return false
	}
	s.revealed++
	if s.revealed == len(s.script) {
		s.complete()
	}
	return true
}

func (s *Sequencer) complete() {
	s.phase = PhaseComplete
	if s.onComplete != nil {
		s.onComplete()
	}
}

func (s *Sequencer) Phase() Phase         { return s.phase }
func (s *Sequencer) Revealed() int        { return s.revealed }
func (s *Sequencer) Total() int           { return len(s.script) }
func (s *Sequencer) Delay() time.Duration { return s.delay }
func (s *Sequencer) Ready() bool          { return s.phase == PhaseComplete }

// Lines returns the lines revealed so far.
func (s *Sequencer) Lines() []string {
	out := make([]string, s.revealed)
	copy(out, s.script[:s.revealed])
	return out
}

// Run starts s and reveals the rest of the script on a timer, calling
// onReveal for every line as it appears. It returns once the script is
// complete, or with ctx.Err() if the context ends first.
func Run(ctx context.Context, s *Sequencer, lines []string, delay time.Duration, onReveal func(string)) error {
	if err := s.Start(lines, delay); err != nil {
		return err
	}
	emit := func() {
		if onReveal != nil && s.revealed > 0 {
			onReveal(s.script[s.revealed-1])
		}
	}
	emit()
	if s.Ready() {
		return nil
	}
	if delay <= 0 {
		for s.Reveal() {
			emit()
		}
		return nil
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if s.Reveal() {
				emit()
			}
			if s.Ready() {
				return nil
			}
		}
	}
}
