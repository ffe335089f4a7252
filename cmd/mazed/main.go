// This is the maze solving daemon: it serves the solve and verify endpoints
// over HTTP, optionally caching solutions in Redis.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/mazedfs/api"
	"github.com/katalvlaran/mazedfs/api/i"
	"github.com/katalvlaran/mazedfs/api/mazeapi"
	"github.com/katalvlaran/mazedfs/cache"
	"github.com/katalvlaran/mazedfs/config"
	"github.com/katalvlaran/mazedfs/service"
)

var appLogger = log.New(os.Stdout, config.ColorGreen+"[APP]"+config.ColorReset+" ", log.LstdFlags)

// initCache connects to Redis when configured. A nil cache disables caching.
func initCache(ctx context.Context, cfg config.Config) (service.SolutionCache, func()) {
	if cfg.RedisAddr == "" {
		appLogger.Println("[INFO] REDIS_ADDR not set, solution cache disabled")
		return nil, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store, err := cache.NewRedisStore(client, cfg.CacheTTL)
	if err != nil {
		appLogger.Printf("[ERROR] Creating solution cache: %v", err)
		os.Exit(1)
	}
	if err := store.Ping(ctx); err != nil {
		appLogger.Printf("[ERROR] Redis ping failed, solution cache disabled: %v", err)
		_ = client.Close()
		return nil, func() {}
	}
	appLogger.Printf("[INFO] Connected to Redis at %s", cfg.RedisAddr)
	return store, func() { _ = client.Close() }
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		appLogger.Printf("[ERROR] Loading configuration: %v", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	solutionCache, closeCache := initCache(ctx, cfg)
	cancel()
	defer closeCache()

	cacheLogger := log.New(os.Stdout, config.ColorCyan+"[CACHE]"+config.ColorReset+" ", log.LstdFlags)
	solver := service.NewSolver(service.Config{
		MaxSteps: cfg.SolveMaxSteps,
		Timeout:  cfg.SolveTimeout,
		Cache:    solutionCache,
		Logf:     cacheLogger.Printf,
	})
	appLogger.Println("[INFO] Solver initialized")

	mazeController, err := mazeapi.NewMazeController(solver)
	if err != nil {
		appLogger.Printf("[ERROR] Creating maze controller: %v", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.Config{
		Addr:         cfg.Addr(),
		BaseURL:      cfg.BaseURL,
		Controllers:  []i.Controller{mazeController},
		MaxBodyBytes: cfg.MaxMazeBytes,
	})
	appLogger.Printf("[INFO] Listening on %s", cfg.Addr())

	if err := router.Run(); err != nil {
		appLogger.Printf("[ERROR] Starting server: %v", err)
		os.Exit(1)
	}
}
