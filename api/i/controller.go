package i

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazedfs/service"
)

// Controller registers its routes on a versioned group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// MazeSolver is the use case the maze controller drives.
type MazeSolver interface {
	Solve(ctx context.Context, input string) (*service.Report, error)
	Verify(input, path string) error
}
