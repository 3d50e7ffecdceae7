package router

import (
	"ProjectUploadService/internal/config"
	"ProjectUploadService/internal/handler"
	"ProjectUploadService/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ProjectUploadService/docs"
)

// New wires middleware and routes onto a fresh gin engine.
func New(cfg config.ServerConfig, uploads *handler.UploadHandler, health *handler.HealthHandler, log zerolog.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestIDMiddleware(log))
	r.Use(middleware.AccessLogMiddleware())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", health.Health)

	api := r.Group("/api")
	{
		api.POST("/upload", uploads.Create)
		api.GET("/data", uploads.List)
		api.PUT("/update/:email", uploads.Update)
		api.DELETE("/delete/:email", uploads.Delete)
	}

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}
