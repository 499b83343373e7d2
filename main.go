package main

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/logger"
	"food-ordering-api/metrics"
	"food-ordering-api/middleware"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := config.InitDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	log.Info().Str("db", cfg.DBPath).Msg("database connected and migrated")

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
		})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.SetupRoutes(r)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
