package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minglu-edu/schedule-proxy/internal/schedule"
	"github.com/minglu-edu/schedule-proxy/internal/web"
	"github.com/minglu-edu/schedule-proxy/pkg/config"
	"github.com/minglu-edu/schedule-proxy/pkg/logger"
	reqidmiddleware "github.com/minglu-edu/schedule-proxy/pkg/middleware/requestid"
)

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

	store := schedule.NewStore()
	fetcher := web.NewFetcher(cfg.Web.ProxyBaseURL, logr)
	swapper := web.NewSwapper(cfg.Web.FadeDelay, web.WallClockTimer{})
	pageHandler := web.NewHandler(store, fetcher, swapper, logr)

	// Fetch once at startup; a failure surfaces as the page error banner.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := pageHandler.Load(ctx); err != nil {
		logr.Sugar().Warnw("initial course load failed", "error", err)
	}
	cancel()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	pageHandler.Register(r)

	addr := fmt.Sprintf(":%d", cfg.Web.Port)
	logr.Sugar().Infow("schedule web starting", "addr", addr, "proxy", cfg.Web.ProxyBaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("schedule web failed", "error", err)
	}
}
