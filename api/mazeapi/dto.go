// Package mazeapi provides the request and response shapes of the maze endpoints.
package mazeapi

// SolveRequest carries a maze in its text format.
type SolveRequest struct {
	Maze string `json:"maze" binding:"required"`
}

// PositionDTO is a 0-indexed cell coordinate.
type PositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveResponse reports the outcome of one search.
type SolveResponse struct {
	ID        string      `json:"id"`
	Found     bool        `json:"found"`
	Path      string      `json:"path"`
	Length    int         `json:"length"`
	Start     PositionDTO `json:"start"`
	Elapsed   string      `json:"elapsed"`
	ElapsedNS int64       `json:"elapsed_ns"`
	Expanded  int         `json:"expanded"`
	Cached    bool        `json:"cached"`
}

// VerifyRequest carries a maze and a candidate path such as "R,R,D".
type VerifyRequest struct {
	Maze string `json:"maze" binding:"required"`
	Path string `json:"path"`
}

// VerifyResponse reports whether the path is a valid route to a goal.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
