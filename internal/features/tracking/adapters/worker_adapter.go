package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tracking-viewer/internal/core/config"
	"tracking-viewer/internal/core/httpclient"
	"tracking-viewer/internal/core/logger"
	"tracking-viewer/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// WorkerAdapter implements ports.SearchProvider against the tracking worker's HTTP API.
type WorkerAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL has no trailing slash.
	baseURL string
	logger  *zap.Logger
}

// NewWorkerAdapter creates a WorkerAdapter. recorder may be nil.
func NewWorkerAdapter(cfg config.WorkerConfig, recorder httpclient.StatusRecorder) *WorkerAdapter {
	return &WorkerAdapter{
		client:  httpclient.NewClient(cfg.FetchTimeout(), recorder),
		baseURL: cfg.URL,
		logger:  logger.Named("worker"),
	}
}

// Search fetches every tracking record the worker knows about.
// No query parameters, body or credentials are sent.
func (a *WorkerAdapter) Search(ctx context.Context) (*domain.SearchResult, error) {
	url := a.baseURL + "/search"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("worker returned status %d: %w", resp.StatusCode, domain.ErrUnexpectedStatus)
	}

	var result domain.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	a.logger.Debug("Search completed",
		zap.Int("records", len(result.Results)),
		zap.Int("count", result.Count),
		zap.Duration("duration", time.Since(start)),
	)

	return &result, nil
}
