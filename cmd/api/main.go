package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/studiobela/salon-booking/internal/cache"
	"github.com/studiobela/salon-booking/internal/config"
	dbpkg "github.com/studiobela/salon-booking/internal/db"
	"github.com/studiobela/salon-booking/internal/logging"
	"github.com/studiobela/salon-booking/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.Env)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	redisClient := cache.NewRedisClient(cfg, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, logger, cfg)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
