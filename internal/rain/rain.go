// Package rain implements the falling-character background effect.
//
// A [Rain] keeps one cursor per column of a [Surface]. Every [Rain.Tick]
// fades the surface slightly, draws one random symbol per column at the
// cursor and moves the cursor down. Columns that have fallen past the
// bottom restart at the top with a small probability, which staggers the
// drops.
package rain

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

const (
	DefaultAlphabet    = "01<>$#@"
	DefaultCellSize    = 14
	DefaultFade        = 0.1
	DefaultResetChance = 0.025
	DefaultInterval    = 40 * time.Millisecond
)

var (
	ErrNoSurface = errors.New("rain: no surface")
	ErrCellSize  = errors.New("rain: cell size must be positive")
)

// Surface is the drawable area the effect paints on. Coordinates and size
// are in pixels.
type Surface interface {
	Size() (w, h int)
	Fade(alpha float64)
	Draw(x, y int, r rune)
}

// Source supplies randomness. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type Rain struct {
	surface     Surface
	cell        int
	height      int
	cursors     []int
	rng         Source
	alphabet    []rune
	resetChance float64
	fade        float64
	resets      int
}

type Option func(*Rain)

func WithSource(src Source) Option {
	return func(r *Rain) { r.rng = src }
}

// WithAlphabet replaces the symbol set. An empty alphabet is ignored.
func WithAlphabet(alphabet string) Option {
	return func(r *Rain) {
		if runes := []rune(alphabet); len(runes) > 0 {
			r.alphabet = runes
		}
	}
}

// WithResetChance sets the per-tick restart probability, clamped to [0, 1].
func WithResetChance(p float64) Option {
	return func(r *Rain) { r.resetChance = clamp01(p) }
}

// WithFade sets the overlay opacity painted before each tick.
func WithFade(alpha float64) Option {
	return func(r *Rain) { r.fade = clamp01(alpha) }
}

// New sizes the effect to the surface: one column per cellSize pixels,
// every cursor starting at row 1.
func New(surface Surface, cellSize int, opts ...Option) (*Rain, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if cellSize <= 0 {
		return nil, ErrCellSize
	}
	w, h := surface.Size()
	cols := 0
	if w > 0 {
		cols = w / cellSize
	}
	r := &Rain{
		surface:     surface,
		cell:        cellSize,
		height:      h,
		cursors:     make([]int, cols),
		alphabet:    []rune(DefaultAlphabet),
		resetChance: DefaultResetChance,
		fade:        DefaultFade,
	}
	for i := range r.cursors {
		r.cursors[i] = 1
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	return r, nil
}

// Tick paints one frame.
func (r *Rain) Tick() {
	r.surface.Fade(r.fade)
	for i, y := range r.cursors {
		sym := r.alphabet[r.rng.IntN(len(r.alphabet))]
		r.surface.Draw(i*r.cell, y*r.cell, sym)
		if y*r.cell > r.height && r.rng.Float64() < r.resetChance {
			r.cursors[i] = 0
			r.resets++
		}
		r.cursors[i]++
	}
}

// Run ticks every interval until ctx is done. onFrame, if set, runs after
// each tick on the same goroutine.
func (r *Rain) Run(ctx context.Context, interval time.Duration, onFrame func()) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Tick()
			if onFrame != nil {
				onFrame()
			}
		}
	}
}

func (r *Rain) Columns() int { return len(r.cursors) }

// Resets counts column restarts since New.
func (r *Rain) Resets() int { return r.resets }

// Cursors returns a copy of the per-column row positions.
func (r *Rain) Cursors() []int {
	out := make([]int, len(r.cursors))
	copy(out, r.cursors)
	return out
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
