// Package mazedfs reads character grid mazes and finds a route from the
// start cell to a goal cell with depth-first search.
//
// What is in the box?
//
//	maze/     — Grid, Position, Move, Path; parsing, adjacency, path validation
//	dfs/      — iterative, lazily deduplicated depth-first search
//	render/   — PNG, animated GIF and ASCII pictures of a maze and its route
//	service/  — parse → find start → solve → time, with an optional cache
//	cache/    — Redis-backed solution store
//	config/   — environment configuration for the daemon
//	api/      — gin router and the /mazes endpoints
//	cmd/      — mazesolve (CLI) and mazed (HTTP daemon)
//
// Maze text format:
//
//	3,3
//	S..
//	.%.
//	..G
//
// The first line holds rows and columns. '%' is a wall, 'S' the start,
// 'G' a goal; every other character is open floor. Moves are U, D, L, R
// and neighbors are always tried in that order, so results are
// reproducible. The search returns any route, not necessarily the shortest.
//
//	go run ./cmd/mazesolve -maze_file maze.txt -png maze.png
package mazedfs
