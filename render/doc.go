// Package render turns a maze.Grid and a solved maze.Path into pictures.
//
// What:
//
//   - Context.Maze paints one square per cell: walls black, start red,
//     goals green, open cells white.
//   - Context.Path adds the route in cyan, leaving the final goal cell
//     untouched, with optional direction arrows.
//   - Context.Frames / Context.WriteGIF animate the route one cell per frame.
//   - Text overlays the route on the character grid with '*'.
//
// The Context replaces any global canvas: callers create one, tune it with
// options, and pass it around. Rendering consumes plain data and cannot
// influence a search.
package render
