package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazedfs/api/i"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr         string
	baseURL      string
	controllers  []i.Controller
	maxBodyBytes int64
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr         string // Address to listen on
	BaseURL      string // Base URL for API routes
	Controllers  []i.Controller
	MaxBodyBytes int64 // Request body cap; zero or less disables it
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:         config.Addr,
		baseURL:      config.BaseURL,
		controllers:  config.Controllers,
		maxBodyBytes: config.MaxBodyBytes,
	}
}

// Engine builds the gin engine with every controller mounted under
// baseURL + "/v1".
func (r *Router) Engine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	if r.maxBodyBytes > 0 {
		router.Use(limitBody(r.maxBodyBytes))
	}

	api := router.Group(r.baseURL)
	{
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}
	}
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Engine().Run(r.addr)
}

// limitBody caps request bodies at n bytes.
func limitBody(n int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, n)
		ctx.Next()
	}
}
