package rain

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

type draw struct {
	x, y int
	r    rune
}

type testSurface struct {
	w, h  int
	fades []float64
	draws []draw
}

func (s *testSurface) Size() (int, int)      { return s.w, s.h }
func (s *testSurface) Fade(alpha float64)    { s.fades = append(s.fades, alpha) }
func (s *testSurface) Draw(x, y int, r rune) { s.draws = append(s.draws, draw{x, y, r}) }

// fixedSource always rolls the same value.
type fixedSource struct{ roll float64 }

func (f fixedSource) Float64() float64 { return f.roll }
func (f fixedSource) IntN(n int) int   { return 0 }

func TestNew(t *testing.T) {
	if _, err := New(nil, 14); !errors.Is(err, ErrNoSurface) {
		t.Errorf("expected ErrNoSurface, got %v", err)
	}
	if _, err := New(&testSurface{w: 100, h: 100}, 0); !errors.Is(err, ErrCellSize) {
		t.Errorf("expected ErrCellSize, got %v", err)
	}

	tests := []struct {
		w, cell, cols int
	}{
		{100, 14, 7},
		{98, 14, 7},
		{13, 14, 0},
		{0, 14, 0},
		{80, 1, 80},
	}
	for _, tt := range tests {
		r, err := New(&testSurface{w: tt.w, h: 50}, tt.cell)
		if err != nil {
			t.Fatalf("new failed: %v", err)
		}
		if r.Columns() != tt.cols {
			t.Errorf("width %d cell %d: expected %d columns, got %d", tt.w, tt.cell, tt.cols, r.Columns())
		}
		for i, c := range r.Cursors() {
			if c != 1 {
				t.Errorf("column %d: expected cursor 1, got %d", i, c)
			}
		}
	}
}

func TestTickDraws(t *testing.T) {
	s := &testSurface{w: 42, h: 1000}
	r, _ := New(s, 14, WithSource(fixedSource{roll: 0.5}), WithAlphabet("x"))

	r.Tick()

	if len(s.fades) != 1 || s.fades[0] != DefaultFade {
		t.Errorf("expected one fade of %.2f, got %v", DefaultFade, s.fades)
	}
	if len(s.draws) != 3 {
		t.Fatalf("expected 3 draws, got %d", len(s.draws))
	}
	for i, d := range s.draws {
		if d.x != i*14 || d.y != 14 || d.r != 'x' {
			t.Errorf("draw %d: unexpected %+v", i, d)
		}
	}
	for _, c := range r.Cursors() {
		if c != 2 {
			t.Errorf("expected cursor 2 after one tick, got %d", c)
		}
	}
}

func TestTickEmptySurface(t *testing.T) {
	s := &testSurface{w: 0, h: 100}
	r, _ := New(s, 14)
	r.Tick()
	if len(s.draws) != 0 {
		t.Error("zero-width surface should draw nothing")
	}
	if len(s.fades) != 1 {
		t.Error("fade should still run")
	}
}

func TestTickReset(t *testing.T) {
	s := &testSurface{w: 28, h: 28}
	r, _ := New(s, 14, WithSource(fixedSource{roll: 0}))

	// rows 1 and 2 are on screen; row 3 is past the bottom and resets.
	r.Tick()
	r.Tick()
	if r.Resets() != 0 {
		t.Fatalf("no column should reset on screen, got %d", r.Resets())
	}
	r.Tick()
	if r.Resets() != 2 {
		t.Fatalf("expected both columns to reset, got %d", r.Resets())
	}
	for _, c := range r.Cursors() {
		if c != 1 {
			t.Errorf("expected cursor 1 after reset, got %d", c)
		}
	}
}

func TestResetChanceBounds(t *testing.T) {
	s := &testSurface{w: 14, h: 0}

	never, _ := New(s, 14, WithResetChance(-3), WithSource(fixedSource{roll: 0}))
	always, _ := New(s, 14, WithResetChance(7), WithSource(fixedSource{roll: 0.999}))

	for i := 0; i < 50; i++ {
		never.Tick()
		always.Tick()
	}
	if never.Resets() != 0 {
		t.Errorf("clamped chance 0 should never reset, got %d", never.Resets())
	}
	if always.Resets() != 50 {
		t.Errorf("clamped chance 1 should reset every tick, got %d", always.Resets())
	}
	if never.Cursors()[0] != 51 {
		t.Errorf("expected cursor 51, got %d", never.Cursors()[0])
	}
}

func TestEveryColumnEventuallyResets(t *testing.T) {
	s := &testSurface{w: 14 * 20, h: 14 * 10}
	src := rand.New(rand.NewPCG(42, 7))
	r, _ := New(s, 14, WithSource(src))

	seen := make([]bool, r.Columns())
	prev := r.Cursors()
	for i := 0; i < 3000; i++ {
		r.Tick()
		for c, y := range r.Cursors() {
			if y < 0 {
				t.Fatalf("negative cursor %d in column %d", y, c)
			}
			if y < prev[c] {
				seen[c] = true
			}
		}
		prev = r.Cursors()
	}
	for c, ok := range seen {
		if !ok {
			t.Errorf("column %d never reset", c)
		}
	}
}

func TestRunStops(t *testing.T) {
	s := &testSurface{w: 28, h: 28}
	r, _ := New(s, 14)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	frames := 0
	if err := r.Run(ctx, time.Millisecond, func() { frames++ }); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if frames == 0 {
		t.Error("expected at least one frame")
	}
	if len(s.fades) != frames {
		t.Errorf("expected %d ticks, got %d", frames, len(s.fades))
	}
}
