package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/minglu-edu/schedule-proxy/api/swagger"
	"github.com/minglu-edu/schedule-proxy/internal/handler"
	"github.com/minglu-edu/schedule-proxy/internal/middleware"
	"github.com/minglu-edu/schedule-proxy/internal/notion"
	"github.com/minglu-edu/schedule-proxy/internal/service"
	"github.com/minglu-edu/schedule-proxy/pkg/cache"
	"github.com/minglu-edu/schedule-proxy/pkg/config"
	"github.com/minglu-edu/schedule-proxy/pkg/logger"
	corsmiddleware "github.com/minglu-edu/schedule-proxy/pkg/middleware/cors"
	reqidmiddleware "github.com/minglu-edu/schedule-proxy/pkg/middleware/requestid"
)

// @title Class Schedule Proxy
// @version 0.1.0
// @description Proxy between the parent-facing schedule page and the Notion workspace database
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	notionClient := notion.NewClient(cfg.Notion, logr)

	var courseCache *service.RedisCourseCache
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Cache.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, serving uncached", "error", err)
		} else {
			courseCache = service.NewRedisCourseCache(redisClient, cfg.Cache, metricsSvc, logr)
		}
	}

	var courseSvc *service.CourseService
	if courseCache != nil {
		courseSvc = service.NewCourseService(notionClient, courseCache, metricsSvc, logr)
	} else {
		courseSvc = service.NewCourseService(notionClient, nil, metricsSvc, logr)
	}
	courseHandler := handler.NewCourseHandler(courseSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	r.GET("/api/courses", courseHandler.List)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("proxy starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("proxy failed", "error", err)
	}
}
