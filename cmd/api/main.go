package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"tracking-viewer/internal/core/cache"
	"tracking-viewer/internal/core/config"
	"tracking-viewer/internal/core/logger"
	"tracking-viewer/internal/core/metrics"
	"tracking-viewer/internal/core/server"
	noticeadapter "tracking-viewer/internal/features/notices/adapters"
	noticehandler "tracking-viewer/internal/features/notices/handler"
	noticeports "tracking-viewer/internal/features/notices/ports"
	noticeservice "tracking-viewer/internal/features/notices/service"
	trackingadapter "tracking-viewer/internal/features/tracking/adapters"
	trackinghandler "tracking-viewer/internal/features/tracking/handler"
	trackingservice "tracking-viewer/internal/features/tracking/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Tracking Viewer API
// @version 1.0
// @description Read-only viewer over the tracking worker's /search endpoint.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("worker_url", cfg.Worker.URL),
	)

	loc, err := cfg.View.Location()
	if err != nil {
		l.Fatal("Invalid display timezone", zap.Error(err))
	}

	m, err := metrics.New()
	if err != nil {
		l.Fatal("Failed to init metrics", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Notices are optional; without Redis the page simply never shows one.
	var (
		redisCache cache.Cache
		notices    noticeports.NoticeService
	)
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			l.Fatal("Failed to configure Redis", zap.Error(err))
		}
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		l.Info("Redis connection verified")
		redisCache = rc
		notices = noticeservice.NewNoticeService(noticeadapter.NewRedisNoticeRepository(rc))
	}

	worker := trackingadapter.NewWorkerAdapter(cfg.Worker, m)
	views := trackingservice.NewViewRegistry(ctx, worker, m, cfg.View.TTL(), trackingservice.WithMaxViews(cfg.View.MaxViews))
	trackingHdl := trackinghandler.NewTrackingHandler(views, notices, loc)

	srv := server.New(cfg, m, redisCache)

	// Register Routes
	srv.App.Get("/", trackingHdl.Page)
	srv.App.Get("/api/view", trackingHdl.Snapshot)
	if notices != nil {
		noticehandler.NewNoticeHandler(notices).Register(srv.App)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return views.Run(gctx) })

	if err := g.Wait(); err != nil {
		l.Fatal("Server stopped with error", zap.Error(err))
	}
	l.Info("Application stopped")
}
