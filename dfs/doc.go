// Package dfs finds a path from a start cell to any goal cell of a
// maze.Grid using iterative depth-first search.
//
// What:
//
//   - Solve keeps an explicit LIFO worklist of (position, path-so-far)
//     records and a visited set keyed by position.
//   - A popped goal cell ends the search immediately with its path.
//   - A popped, unvisited cell is marked visited and every open neighbor is
//     pushed in maze.Directions order (Up, Down, Left, Right), whether or not
//     that neighbor was already visited.
//   - A popped, already visited cell is discarded. Deduplication is lazy: it
//     happens at pop time, never at push time, so the worklist may hold the
//     same position many times.
//   - An empty worklist means no goal is reachable. That is a normal
//     outcome (Result.Found == false), not an error.
//
// Why:
//
//   - Any route is acceptable and cheaper to find than a shortest one.
//   - The fixed neighbor order plus lazy deduplication make the returned
//     path fully deterministic: the same grid and start always give the
//     same moves.
//
// Options:
//
//   - WithContext(ctx)      cancellation, checked once per pop.
//   - WithMaxSteps(n)       caps the number of expansions (ErrStepLimit).
//   - WithOnVisit(fn)       hook run when a position is marked visited; an
//     error aborts the search.
//
// Complexity:
//
//   - Time:   O(R×C) expansions, each pushing at most four records.
//   - Memory: O(R×C) visited flags plus up to O(R×C) pending duplicate
//     records. Paths share prefixes, so a record costs O(1).
//
// Errors:
//
//   - ErrGridNil            grid pointer is nil.
//   - ErrStartOutOfBounds   start lies outside the grid.
//   - ErrStepLimit          MaxSteps expansions were used up.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//   - any error returned by OnVisit.
package dfs
