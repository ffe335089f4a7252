// Package service wires parsing, start lookup, search, timing and caching
// into a single solve use case shared by the command line and HTTP surfaces.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
)

// notFoundMarker is the cached value for a maze with no reachable goal.
const notFoundMarker = "!"

// SolutionCache stores solved path text by maze fingerprint.
type SolutionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Report is the outcome of one solve.
type Report struct {
	ID       uuid.UUID
	Grid     *maze.Grid
	Start    maze.Position
	Found    bool
	Path     maze.Path
	Elapsed  time.Duration
	Expanded int
	Cached   bool
}

// Config tunes a Solver.
type Config struct {
	// MaxSteps caps expansions per search; zero or negative means unlimited.
	MaxSteps int
	// Timeout bounds one search; zero means no timeout.
	Timeout time.Duration
	// Cache, if non-nil, is consulted before and filled after each search.
	Cache SolutionCache
	// Logf, if non-nil, receives non-fatal cache failures.
	Logf func(format string, args ...any)
}

// Solver runs solves. It holds only configuration and is safe for
// concurrent use when its cache is.
type Solver struct {
	cfg Config
}

// NewSolver returns a Solver for cfg.
func NewSolver(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

// Fingerprint returns the cache key of g: the hex SHA-256 of its text form.
func Fingerprint(g *maze.Grid) string {
	sum := sha256.Sum256([]byte(g.String()))
	return hex.EncodeToString(sum[:])
}

// Solve parses input, finds the start cell, and searches for a goal.
// Format and start errors are returned before any search runs. A maze
// with no reachable goal yields a Report with Found == false.
func (s *Solver) Solve(ctx context.Context, input string) (*Report, error) {
	g, err := maze.ParseString(input)
	if err != nil {
		return nil, err
	}
	return s.SolveGrid(ctx, g)
}

// SolveGrid is Solve for an already parsed grid.
func (s *Solver) SolveGrid(ctx context.Context, g *maze.Grid) (*Report, error) {
	start, err := maze.FindStart(g)
	if err != nil {
		return nil, err
	}

	rep := &Report{ID: uuid.New(), Grid: g, Start: start}
	key := Fingerprint(g)

	if s.cfg.Cache != nil {
		began := time.Now()
		if val, ok, err := s.cfg.Cache.Get(ctx, key); err != nil {
			s.logf("[ERROR] get %s: %v", key, err)
		} else if ok {
			if err := rep.fill(val); err == nil {
				rep.Cached = true
				rep.Elapsed = time.Since(began)
				return rep, nil
			}
			s.logf("[ERROR] bad entry %s: %q", key, val)
		}
	}

	// The timeout bounds the search only; cache I/O keeps the caller's ctx.
	searchCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	opts := []dfs.Option{dfs.WithContext(searchCtx)}
	if s.cfg.MaxSteps > 0 {
		opts = append(opts, dfs.WithMaxSteps(s.cfg.MaxSteps))
	}

	began := time.Now()
	res, err := dfs.Solve(g, start, opts...)
	rep.Elapsed = time.Since(began)
	if err != nil {
		return nil, fmt.Errorf("service: solve: %w", err)
	}
	rep.Found = res.Found
	rep.Path = res.Path
	rep.Expanded = res.Expanded

	if s.cfg.Cache != nil {
		if err := s.cfg.Cache.Put(ctx, key, rep.encode()); err != nil {
			s.logf("[ERROR] put %s: %v", key, err)
		}
	}

	return rep, nil
}

// Verify parses input and checks that pathText leads from its start cell
// to a goal without leaving the grid or crossing a wall.
func (s *Solver) Verify(input, pathText string) error {
	g, err := maze.ParseString(input)
	if err != nil {
		return err
	}
	start, err := maze.FindStart(g)
	if err != nil {
		return err
	}
	path, err := maze.ParsePath(pathText)
	if err != nil {
		return err
	}
	return g.ValidatePath(start, path)
}

// IsInputError reports whether err was caused by the caller's maze or path
// text rather than by the search itself.
func IsInputError(err error) bool {
	return errors.Is(err, maze.ErrFormat) ||
		errors.Is(err, maze.ErrStartNotFound) ||
		errors.Is(err, maze.ErrMultipleStarts) ||
		errors.Is(err, maze.ErrInvalidMove)
}

func (r *Report) encode() string {
	if !r.Found {
		return notFoundMarker
	}
	return r.Path.Compact()
}

func (r *Report) fill(val string) error {
	if val == notFoundMarker {
		r.Found, r.Path = false, nil
		return nil
	}
	path, err := maze.ParsePath(val)
	if err != nil {
		return err
	}
	if err := r.Grid.ValidatePath(r.Start, path); err != nil {
		return err
	}
	r.Found, r.Path = true, path
	return nil
}

func (s *Solver) logf(format string, args ...any) {
	if s.cfg.Logf != nil {
		s.cfg.Logf(format, args...)
	}
}

// FormatElapsed renders d the way the solver reports run time: nanoseconds,
// switching to milliseconds above 1 ms and to seconds above 1 s, always
// with three decimals.
func FormatElapsed(d time.Duration) string {
	v := float64(d.Nanoseconds())
	unit := "ns"
	if v/1e6 > 1 {
		v /= 1e6
		unit = "ms"
		if v/1000 > 1 {
			v /= 1000
			unit = "s"
		}
	}
	return fmt.Sprintf("%.3f %s", v, unit)
}

// Summary returns the two-line human report: "Find: R,D" and the run time,
// or "Not found".
func (r *Report) Summary() string {
	if !r.Found {
		return "Not found"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Find: %s\n", r.Path)
	fmt.Fprintf(&sb, "Run time: %s", FormatElapsed(r.Elapsed))
	return sb.String()
}
