// Package maze provides the Grid type: an immutable rectangular matrix of
// cell symbols with 4-connected adjacency.
//
//   - Walls ('%') are never open.
//   - Start ('S') and goal ('G') cells are open, so a search can step onto them.
//   - Neighbors always reports directions in the order Up, Down, Left, Right.
package maze

import (
	"fmt"
	"strings"
)

// Grid is a rectangular maze. It is immutable once built; all constructors
// deep-copy their input.
type Grid struct {
	rows, cols int
	cells      [][]rune
}

// New constructs a Grid from a non-empty, rectangular 2D slice of symbols.
// Returns ErrEmptyGrid if there are no rows or no columns and
// ErrNonRectangular if any row length differs; both also match ErrFormat.
// Complexity: O(R×C) time and memory.
func New(cells [][]rune) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrFormat, ErrEmptyGrid)
	}
	h, w := len(cells), len(cells[0])
	for i, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d: %w",
				ErrFormat, i, len(row), w, ErrNonRectangular)
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]rune, h)
	for r := 0; r < h; r++ {
		cp[r] = make([]rune, w)
		copy(cp[r], cells[r])
	}

	return &Grid{rows: h, cols: w, cells: cp}, nil
}

// FromStrings builds a Grid from one string per row.
func FromStrings(lines ...string) (*Grid, error) {
	cells := make([][]rune, len(lines))
	for i, line := range lines {
		cells[i] = []rune(line)
	}
	return New(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the symbol at p and whether p is in bounds.
func (g *Grid) At(p Position) (rune, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Row][p.Col], true
}

// Kind classifies the cell at p. Out-of-bounds positions report KindWall.
func (g *Grid) Kind(p Position) Kind {
	sym, ok := g.At(p)
	if !ok {
		return KindWall
	}
	return KindOf(sym)
}

// IsGoal reports whether p is an in-bounds 'G' cell.
func (g *Grid) IsGoal(p Position) bool {
	sym, ok := g.At(p)
	return ok && sym == Goal
}

// IsOpen reports whether p is in bounds and not a wall.
// Goal and start cells are open.
// Complexity: O(1).
func (g *Grid) IsOpen(p Position) bool {
	sym, ok := g.At(p)
	return ok && sym != Wall
}

// Neighbors returns the open cells adjacent to p, in Directions order
// (Up, Down, Left, Right). p itself need not be open.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Neighbor {
	out := make([]Neighbor, 0, len(Directions))
	for _, m := range Directions {
		next := p.Step(m)
		if g.IsOpen(next) {
			out = append(out, Neighbor{Pos: next, Move: m})
		}
	}
	return out
}

// FindStart scans rows top-to-bottom and columns left-to-right for the 'S'
// cell. Returns ErrStartNotFound if there is none and ErrMultipleStarts if
// a second one exists.
// Complexity: O(R×C).
func FindStart(g *Grid) (Position, error) {
	var (
		start Position
		found bool
	)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != Start {
				continue
			}
			if found {
				return Position{}, fmt.Errorf("%w: %v and %v",
					ErrMultipleStarts, start, Position{Row: r, Col: c})
			}
			start, found = Position{Row: r, Col: c}, true
		}
	}
	if !found {
		return Position{}, ErrStartNotFound
	}

	return start, nil
}

// Goals lists every goal cell in row-major order.
func (g *Grid) Goals() []Position {
	var out []Position
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Goal {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Row returns row r as a string, or "" if r is out of range.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.rows {
		return ""
	}
	return string(g.cells[r])
}

// String renders g back to the text format accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d,%d\n", g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		sb.WriteString(string(g.cells[r]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps p to a row-major index: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Index exposes the row-major index of p for callers keeping
// per-cell flat slices. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return g.index(p)
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// ValidatePath applies path from start and checks that every step stays in
// bounds, never lands on a wall, and that the final cell is a goal.
// Complexity: O(len(path)).
func (g *Grid) ValidatePath(start Position, path Path) error {
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v", ErrPathOutOfBounds, start)
	}
	cur := start
	for i, m := range path {
		cur = cur.Step(m)
		if !g.InBounds(cur) {
			return fmt.Errorf("%w: step %d (%v) reaches %v", ErrPathOutOfBounds, i, m, cur)
		}
		if g.cells[cur.Row][cur.Col] == Wall {
			return fmt.Errorf("%w: step %d (%v) reaches %v", ErrPathBlocked, i, m, cur)
		}
	}
	if !g.IsGoal(cur) {
		return fmt.Errorf("%w: ends at %v", ErrPathNotAtGoal, cur)
	}

	return nil
}
