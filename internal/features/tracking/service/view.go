package service

import (
	"context"
	"sync"
	"time"

	"tracking-viewer/internal/core/logger"
	"tracking-viewer/internal/core/metrics"
	"tracking-viewer/internal/features/tracking/domain"
	"tracking-viewer/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// View is one mounted tracking viewer. It fetches from the worker exactly once,
// on Mount, and afterwards only projects its stored records.
type View struct {
	id       string
	provider ports.SearchProvider
	metrics  *metrics.Registry
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}

	mu    sync.RWMutex
	state domain.ViewState
}

// NewView creates an unmounted view bound to parent. m may be nil.
func NewView(parent context.Context, id string, provider ports.SearchProvider, m *metrics.Registry) *View {
	ctx, cancel := context.WithCancel(parent)
	return &View{
		id:       id,
		provider: provider,
		metrics:  m,
		logger:   logger.Named("view").With(zap.String("view_id", id)),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		state:    domain.NewViewState(),
	}
}

// ID returns the view identifier.
func (v *View) ID() string {
	return v.id
}

// Mount issues the view's single fetch in the background. Later calls do nothing.
func (v *View) Mount() {
	v.once.Do(func() {
		go v.fetch()
	})
}

func (v *View) fetch() {
	defer close(v.done)

	start := time.Now()
	res, err := v.provider.Search(v.ctx)
	elapsed := time.Since(start)

	if !v.settle(res, err) {
		v.metrics.ObserveFetch(metrics.OutcomeDiscarded, elapsed)
		v.logger.Debug("Discarding fetch result of closed view")
		return
	}

	if err != nil {
		v.metrics.ObserveFetch(metrics.OutcomeFailure, elapsed)
		v.logger.Warn("Tracking fetch failed", zap.Duration("duration", elapsed), zap.Error(err))
		return
	}

	v.metrics.ObserveFetch(metrics.OutcomeSuccess, elapsed)
	v.logger.Info("Tracking records loaded",
		zap.Int("records", v.Snapshot().Total()),
		zap.Duration("duration", elapsed),
	)
}

// settle stores the fetch outcome unless the view was closed. Close takes the
// same lock, so no result lands after it returns.
func (v *View) settle(res *domain.SearchResult, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.ctx.Err() != nil {
		return false
	}
	v.state.Settle(res, err)
	return true
}

// Done is closed once the fetch has settled or been discarded.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// SetHideDelivered sets the filter flag. It never triggers a fetch.
func (v *View) SetHideDelivered(hide bool) {
	v.mu.Lock()
	v.state.HideDelivered = hide
	v.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() domain.ViewState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state.Clone()
}

// Close tears the view down. An in-flight fetch is cancelled and its result dropped.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancel()
}
