// Package mazeapi exposes maze solving over HTTP.
package mazeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazedfs/api/i"
	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
	"github.com/katalvlaran/mazedfs/service"
)

// MazeController serves the solve and verify endpoints.
type MazeController struct {
	solver i.MazeSolver
}

// NewMazeController initializes a MazeController.
func NewMazeController(solver i.MazeSolver) (*MazeController, error) {
	if solver == nil {
		return nil, errors.New("mazeapi: solver is nil")
	}
	return &MazeController{solver: solver}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/solve", mc.solve)
		mazes.POST("/verify", mc.verify)
	}
}

// solve handles search requests.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(bindStatus(err), gin.H{"error": err.Error()})
		return
	}

	report, err := mc.solver.Solve(ctx.Request.Context(), request.Maze)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := &SolveResponse{
		ID:        report.ID.String(),
		Found:     report.Found,
		Path:      report.Path.String(),
		Length:    len(report.Path),
		Start:     PositionDTO{Row: report.Start.Row, Col: report.Start.Col},
		Elapsed:   service.FormatElapsed(report.Elapsed),
		ElapsedNS: report.Elapsed.Nanoseconds(),
		Expanded:  report.Expanded,
		Cached:    report.Cached,
	}
	ctx.JSON(http.StatusOK, response)
}

// verify checks a caller-supplied path.
func (mc *MazeController) verify(ctx *gin.Context) {
	var request VerifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(bindStatus(err), gin.H{"error": err.Error()})
		return
	}

	err := mc.solver.Verify(request.Maze, request.Path)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, &VerifyResponse{Valid: true})
	case errors.Is(err, maze.ErrPathBlocked),
		errors.Is(err, maze.ErrPathOutOfBounds),
		errors.Is(err, maze.ErrPathNotAtGoal):
		ctx.JSON(http.StatusOK, &VerifyResponse{Valid: false, Error: err.Error()})
	default:
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
	}
}

// bindStatus maps request decoding errors to HTTP status codes.
func bindStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// statusFor maps solve errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case service.IsInputError(err):
		return http.StatusBadRequest
	case errors.Is(err, dfs.ErrStepLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
