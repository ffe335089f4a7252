// Package dfs defines options, results, and sentinel errors for the
// depth-first maze solver.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/mazedfs/maze"
)

var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to Solve.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates that the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("dfs: start position out of bounds")

	// ErrStepLimit indicates the search used up its MaxSteps budget
	// before reaching a goal or exhausting the worklist.
	ErrStepLimit = errors.New("dfs: step limit reached")
)

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxSteps, if non-negative, limits how many positions may be expanded
	// (marked visited). Default is -1 (no limit).
	MaxSteps int

	// OnVisit, if non-nil, is invoked when a position is marked visited,
	// before its neighbors are pushed. Returning an error aborts the search.
	OnVisit func(p maze.Position) error
}

// DefaultOptions returns Options with a background context, no step limit
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: -1,
		OnVisit:  nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps returns an Option that caps the number of expansions.
// A negative limit disables the cap.
func WithMaxSteps(limit int) Option {
	return func(o *Options) {
		o.MaxSteps = limit
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(p maze.Position) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a search and a few counters that make the
// lazy deduplication observable.
type Result struct {
	// Found reports whether a goal cell was reached.
	Found bool

	// Path holds the moves from start to the goal. Nil when Found is false;
	// empty (non-nil) when the start itself is a goal.
	Path maze.Path

	// Goal is the goal cell reached; zero when Found is false.
	Goal maze.Position

	// Order records positions in the sequence they were marked visited.
	Order []maze.Position

	// Expanded counts positions marked visited (len(Order)).
	Expanded int

	// Pushed counts records pushed onto the worklist, the initial one included.
	Pushed int

	// Discarded counts records popped for an already visited position.
	Discarded int

	// MaxStack is the largest worklist size observed.
	MaxStack int
}
