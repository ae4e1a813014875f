package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/salonworks/salon-scheduler/internal/cache"
	"github.com/salonworks/salon-scheduler/internal/config"
	dbpkg "github.com/salonworks/salon-scheduler/internal/db"
	"github.com/salonworks/salon-scheduler/internal/logging"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/routes"
)

func main() {

	// missing .env is fine in production, env vars win anyway
	_ = godotenv.Load()

	logger := logging.New()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, logger)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := rdb.Ping(ctx).Err(); err != nil {
		// the calendar cache degrades to DB reads, so boot anyway
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, calendar cache disabled")
		rdb = nil
	}
	cancelPing()

	calCache := cache.NewCalendarCache(rdb, logger)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, calCache, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
