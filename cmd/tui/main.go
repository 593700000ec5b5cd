package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tracking-viewer/internal/core/config"
	"tracking-viewer/internal/core/logger"
	trackingadapter "tracking-viewer/internal/features/tracking/adapters"
	"tracking-viewer/internal/features/tracking/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal is owned by the program, so logs only go to LOG_FILE.
	if cfg.LogFile == "" {
		logger.Disable()
	} else if err := logger.InitWithOutput(cfg.Environment, cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	loc, err := cfg.View.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid display timezone: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	worker := trackingadapter.NewWorkerAdapter(cfg.Worker, nil)

	p := tea.NewProgram(tui.New(ctx, worker, loc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Get().Error("Terminal viewer failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
