package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/syndata/field-scheduler/internal/cache"
	"github.com/syndata/field-scheduler/internal/config"
	dbpkg "github.com/syndata/field-scheduler/internal/db"
	"github.com/syndata/field-scheduler/internal/logger"
	"github.com/syndata/field-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	// Redis é opcional: sem ele os lookups só perdem o cache.
	redisClient, err := cache.NewRedis(cfg)
	if err != nil {
		log.Warn("redis unavailable, lookups uncached", zap.Error(err))
		redisClient = nil
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg, log, redisClient)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
