package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"tracking-viewer/internal/core/cache"
	"tracking-viewer/internal/core/config"
	"tracking-viewer/internal/core/logger"
	"tracking-viewer/internal/core/metrics"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "tracking-viewer/docs/swagger"
)

const (
	shutdownTimeout = 5 * time.Second
	pingTimeout     = time.Second
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
	// cache is pinged by the health check when set.
	cache cache.Cache
}

// HealthResponse is the body returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis,omitempty"`
}

// New creates a new Server instance with configured middleware and the
// health, metrics and swagger routes. m and c may be nil.
func New(cfg *config.AppConfig, m *metrics.Registry, c cache.Cache) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "tracking-viewer",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Named("http"),
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics" || c.Path() == "/healthz"
		},
	}))

	s := &Server{
		App:   app,
		cfg:   cfg,
		cache: c,
	}

	app.Get("/healthz", s.health)
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}
	app.Get("/swagger/*", swagger.HandlerDefault)

	return s
}

func (s *Server) health(c *fiber.Ctx) error {
	if s.cache == nil {
		return c.JSON(HealthResponse{Status: "ok"})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	if err := s.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: redis unreachable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{Status: "degraded", Redis: "down"})
	}
	return c.JSON(HealthResponse{Status: "ok", Redis: "up"})
}

// Run starts the HTTP server and blocks until it fails or ctx is cancelled,
// in which case in-flight requests are given shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	logger.Get().Info("Starting server", zap.String("address", addr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.App.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Get().Info("Shutting down server")
	if err := s.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
