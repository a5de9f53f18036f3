package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/cache"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/config"
	dbpkg "github.com/VitalisHealthTech/clinic-scheduler/internal/db"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/logger"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/routes"
)

func main() {

	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	redisClient := cache.NewClient(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, cfg)

	logger.L().Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("timezone", cfg.Timezone),
		zap.Bool("cache", redisClient != nil),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
