// Package maze models a character grid maze and answers the adjacency
// questions a path search needs.
//
// What:
//
//   - Grid wraps an immutable rectangular [][]rune of cell symbols.
//   - '%' is a wall, 'S' the start, 'G' a goal; any other rune is open.
//   - Parse reads the text format: a "rows,cols" header followed by rows
//     lines of exactly cols characters.
//   - FindStart, IsOpen and Neighbors expose the 4-connected adjacency rule
//     in the fixed direction order Up, Down, Left, Right.
//   - Move and Path describe a route as U/D/L/R steps; ValidatePath checks a
//     route against the grid.
//   - Reachable flood-fills the open region around a position.
//
// Why:
//
//   - Text mazes are the common interchange format for puzzle inputs,
//     robot labs, and game levels.
//   - A fixed neighbor order keeps every search built on top deterministic.
//
// Complexity:
//
//   - Parse, New:     O(R×C) time and memory.
//   - FindStart:      O(R×C).
//   - IsOpen:         O(1).
//   - Neighbors:      O(1) (at most four entries).
//   - Reachable:      O(R×C) time and memory.
//   - ValidatePath:   O(len(path)).
//
// Errors:
//
//   - ErrFormat:          malformed input (header, row count, row width).
//   - ErrEmptyGrid:       zero rows or zero columns (also matches ErrFormat).
//   - ErrNonRectangular:  rows of differing lengths (also matches ErrFormat).
//   - ErrStartNotFound:   no 'S' cell present.
//   - ErrMultipleStarts:  more than one 'S' cell present.
//   - ErrPathOutOfBounds, ErrPathBlocked, ErrPathNotAtGoal: ValidatePath failures.
package maze
