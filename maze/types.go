// Package maze defines core types, symbols, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/mazedfs.
package maze

import (
	"errors"
	"fmt"
)

// Cell symbols recognised by the grid. Every other rune is open floor.
const (
	Wall  = '%'
	Start = 'S'
	Goal  = 'G'
)

// Sentinel errors for maze operations.
var (
	// ErrFormat indicates malformed maze text or an unusable in-memory grid.
	ErrFormat = errors.New("maze: malformed maze")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrStartNotFound indicates the grid holds no start cell.
	ErrStartNotFound = errors.New("maze: start cell not found")
	// ErrMultipleStarts indicates the grid holds more than one start cell.
	ErrMultipleStarts = errors.New("maze: more than one start cell")
	// ErrPathOutOfBounds indicates a move leaves the grid.
	ErrPathOutOfBounds = errors.New("maze: path leaves the grid")
	// ErrPathBlocked indicates a move steps onto a wall.
	ErrPathBlocked = errors.New("maze: path crosses a wall")
	// ErrPathNotAtGoal indicates a path that does not end on a goal cell.
	ErrPathNotAtGoal = errors.New("maze: path does not end on a goal")
	// ErrInvalidMove indicates an unknown move letter.
	ErrInvalidMove = errors.New("maze: invalid move")
)

// Kind classifies a cell by its symbol.
type Kind int

const (
	// KindOpen is any traversable cell that is neither start nor goal.
	KindOpen Kind = iota
	// KindWall is an impassable '%' cell.
	KindWall
	// KindStart is the 'S' cell.
	KindStart
	// KindGoal is a 'G' cell.
	KindGoal
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindWall:
		return "wall"
	case KindStart:
		return "start"
	case KindGoal:
		return "goal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf classifies a single symbol.
func KindOf(sym rune) Kind {
	switch sym {
	case Wall:
		return KindWall
	case Start:
		return KindStart
	case Goal:
		return KindGoal
	}
	return KindOpen
}

// Position is a 0-indexed (Row, Col) pair.
type Position struct {
	Row, Col int
}

// Step returns the position one move away from p. It does not check bounds.
func (p Position) Step(m Move) Position {
	dr, dc := m.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Neighbor pairs an adjacent open position with the move that reaches it.
type Neighbor struct {
	Pos  Position
	Move Move
}
