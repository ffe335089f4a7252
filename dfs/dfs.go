// Package dfs implements the iterative, lazily deduplicated depth-first
// search over a maze.Grid.
//
// Algorithm:
//
//  1. Push (start, empty path). The visited set starts empty.
//  2. Pop the top record (LIFO).
//  3. If its cell is a goal, return its path.
//  4. If its position is unvisited, mark it visited and push
//     (neighbor, path+move) for every open neighbor in Up, Down, Left, Right
//     order, visited or not.
//  5. Otherwise discard the record.
//  6. Repeat from 2 until the worklist is empty; then report not found.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazedfs/maze"
)

// pathNode is one move of a path stored back-to-front. Records pushed from
// the same parent share the parent's chain, so appending a move is O(1) and
// never disturbs sibling paths.
type pathNode struct {
	move maze.Move
	prev *pathNode
	n    int // number of moves up to and including this one
}

// extend returns a path equal to p followed by m.
func (p *pathNode) extend(m maze.Move) *pathNode {
	n := 1
	if p != nil {
		n = p.n + 1
	}
	return &pathNode{move: m, prev: p, n: n}
}

// moves materializes the chain into a start-to-end Path.
func (p *pathNode) moves() maze.Path {
	if p == nil {
		return maze.Path{}
	}
	out := make(maze.Path, p.n)
	for node := p; node != nil; node = node.prev {
		out[node.n-1] = node.move
	}
	return out
}

// record is one worklist entry: a position and the path that reached it.
type record struct {
	pos  maze.Position
	path *pathNode
}

// walker encapsulates the state of one search.
type walker struct {
	grid    *maze.Grid
	opts    Options
	stack   []record
	visited []bool
	res     *Result
}

// Solve searches g from start for any goal cell.
// It returns a Result with Found == false when no goal is reachable; the
// error is non-nil only for invalid input, cancellation, an exhausted step
// budget, or a failing hook. On error the partial Result is still returned
// (nil only for input validation failures).
func Solve(g *maze.Grid, start maze.Position, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, g.Rows(), g.Cols())
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize state
	cells := g.Rows() * g.Cols()
	w := &walker{
		grid:    g,
		opts:    o,
		stack:   make([]record, 0, 64),
		visited: make([]bool, cells),
		res:     &Result{Order: make([]maze.Position, 0, 64)},
	}

	// 4. Run
	if err := w.run(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// push appends r to the worklist and updates the counters.
func (w *walker) push(r record) {
	w.stack = append(w.stack, r)
	w.res.Pushed++
	if len(w.stack) > w.res.MaxStack {
		w.res.MaxStack = len(w.stack)
	}
}

// pop removes and returns the top record. The stack must be non-empty.
func (w *walker) pop() record {
	last := len(w.stack) - 1
	r := w.stack[last]
	w.stack[last] = record{} // drop the path reference for the GC
	w.stack = w.stack[:last]
	return r
}

// run drives the main loop until a goal is popped or the worklist empties.
func (w *walker) run(start maze.Position) error {
	w.push(record{pos: start})

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.pop()

		// 2. Goal test happens on pop
		if w.grid.IsGoal(cur.pos) {
			w.res.Found = true
			w.res.Goal = cur.pos
			w.res.Path = cur.path.moves()
			return nil
		}

		// 3. Lazy deduplication
		idx := w.grid.Index(cur.pos)
		if w.visited[idx] {
			w.res.Discarded++
			continue
		}

		// 4. Step budget
		if w.opts.MaxSteps >= 0 && w.res.Expanded >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d expansions", ErrStepLimit, w.res.Expanded)
		}

		// 5. Mark visited
		w.visited[idx] = true
		w.res.Expanded++
		w.res.Order = append(w.res.Order, cur.pos)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur.pos); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", cur.pos, err)
			}
		}

		// 6. Push every open neighbor, visited or not
		for _, nb := range w.grid.Neighbors(cur.pos) {
			w.push(record{pos: nb.Pos, path: cur.path.extend(nb.Move)})
		}
	}

	return nil
}
