package maze

import (
	"fmt"
	"strings"
)

// Move is a unit step in one of the four orthogonal directions.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// Directions is the fixed exploration order used by Neighbors.
// Changing it changes which path a depth-first search returns.
var Directions = [4]Move{Up, Down, Left, Right}

// moveDeltas holds (Δrow, Δcol) per Move, indexed by the Move value.
var moveDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// moveLetters holds the serialised form of each Move.
var moveLetters = [4]byte{'U', 'D', 'L', 'R'}

// Delta returns the (Δrow, Δcol) offset of m.
func (m Move) Delta() (dRow, dCol int) {
	if int(m) >= len(moveDeltas) {
		return 0, 0
	}
	d := moveDeltas[m]
	return d[0], d[1]
}

// Letter returns the single-letter form of m: U, D, L or R.
func (m Move) Letter() byte {
	if int(m) >= len(moveLetters) {
		return '?'
	}
	return moveLetters[m]
}

func (m Move) String() string {
	if int(m) >= len(moveLetters) {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return string(moveLetters[m])
}

// Reverse returns the move that undoes m.
func (m Move) Reverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// ParseMove converts a letter (case-insensitive) into a Move.
func ParseMove(r rune) (Move, error) {
	switch r {
	case 'U', 'u':
		return Up, nil
	case 'D', 'd':
		return Down, nil
	case 'L', 'l':
		return Left, nil
	case 'R', 'r':
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, r)
}

// Path is an ordered sequence of moves starting at a start position.
type Path []Move

// String joins the move letters with commas, e.g. "R,D,D".
func (p Path) String() string {
	var sb strings.Builder
	for i, m := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(m.Letter())
	}
	return sb.String()
}

// Compact returns the move letters without separators, e.g. "RDD".
func (p Path) Compact() string {
	b := make([]byte, len(p))
	for i, m := range p {
		b[i] = m.Letter()
	}
	return string(b)
}

// Trace applies p from start and returns every position visited,
// start included, so the result has len(p)+1 entries.
func (p Path) Trace(start Position) []Position {
	out := make([]Position, 0, len(p)+1)
	cur := start
	out = append(out, cur)
	for _, m := range p {
		cur = cur.Step(m)
		out = append(out, cur)
	}
	return out
}

// End returns the position reached after applying p from start.
func (p Path) End(start Position) Position {
	cur := start
	for _, m := range p {
		cur = cur.Step(m)
	}
	return cur
}

// ParsePath reads moves from s. Letters may be separated by commas,
// whitespace, or nothing at all: "R,D", "R D" and "RD" are equivalent.
func ParsePath(s string) (Path, error) {
	path := make(Path, 0, len(s))
	for i, r := range s {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		m, err := ParseMove(r)
		if err != nil {
			return nil, fmt.Errorf("maze: ParsePath at offset %d: %w", i, err)
		}
		path = append(path, m)
	}
	return path, nil
}
