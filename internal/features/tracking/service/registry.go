package service

import (
	"context"
	"sync"
	"time"

	"tracking-viewer/internal/core/logger"
	"tracking-viewer/internal/core/metrics"
	"tracking-viewer/internal/features/tracking/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxViews caps live views when no WithMaxViews option is given.
const DefaultMaxViews = 1000

type registryEntry struct {
	view     *View
	lastSeen time.Time
}

// ViewRegistry keeps one View per browser session so that filter toggles and
// page reloads reuse the records fetched on mount.
type ViewRegistry struct {
	ctx      context.Context
	provider ports.SearchProvider
	metrics  *metrics.Registry
	ttl      time.Duration
	maxViews int
	logger   *zap.Logger

	now   func() time.Time
	newID func() string

	mu    sync.Mutex
	views map[string]*registryEntry
}

// RegistryOption configures a ViewRegistry.
type RegistryOption func(*ViewRegistry)

// WithMaxViews caps the number of live views. Mounting past the cap closes the
// view seen least recently. Values below 1 are ignored.
func WithMaxViews(n int) RegistryOption {
	return func(r *ViewRegistry) {
		if n > 0 {
			r.maxViews = n
		}
	}
}

// NewViewRegistry creates a registry whose views live under ctx. m may be nil.
func NewViewRegistry(ctx context.Context, provider ports.SearchProvider, m *metrics.Registry, ttl time.Duration, opts ...RegistryOption) *ViewRegistry {
	r := &ViewRegistry{
		ctx:      ctx,
		provider: provider,
		metrics:  m,
		ttl:      ttl,
		maxViews: DefaultMaxViews,
		logger:   logger.Named("views"),
		now:      time.Now,
		newID:    uuid.NewString,
		views:    make(map[string]*registryEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Acquire returns the live view for id, or mounts a new one when id is unknown
// or expired. created reports whether a new view was mounted.
func (r *ViewRegistry) Acquire(id string) (view *View, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.views[id]; ok && id != "" {
		if now.Sub(e.lastSeen) < r.ttl {
			e.lastSeen = now
			return e.view, false
		}
		r.dropLocked(id)
	}

	return r.mountLocked(now), true
}

// Remount tears down the view for id, if any, and mounts a new one that fetches again.
func (r *ViewRegistry) Remount(id string) *View {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		r.dropLocked(id)
	}
	return r.mountLocked(r.now())
}

func (r *ViewRegistry) dropLocked(id string) {
	if e, ok := r.views[id]; ok {
		e.view.Close()
		delete(r.views, id)
	}
}

func (r *ViewRegistry) mountLocked(now time.Time) *View {
	for len(r.views) >= r.maxViews {
		r.evictOldestLocked()
	}

	v := NewView(r.ctx, r.newID(), r.provider, r.metrics)
	r.views[v.ID()] = &registryEntry{view: v, lastSeen: now}
	v.Mount()

	r.metrics.SetViewsActive(len(r.views))
	r.logger.Debug("Mounted view", zap.String("view_id", v.ID()))

	return v
}

func (r *ViewRegistry) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.views {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	r.dropLocked(oldestID)
	r.logger.Debug("Evicted view at capacity", zap.String("view_id", oldestID), zap.Int("max_views", r.maxViews))
}

// Sweep tears down views idle for longer than the TTL and returns how many were removed.
func (r *ViewRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, e := range r.views {
		if now.Sub(e.lastSeen) >= r.ttl {
			e.view.Close()
			delete(r.views, id)
			removed++
		}
	}

	r.metrics.SetViewsActive(len(r.views))
	return removed
}

// Len returns the number of live views.
func (r *ViewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Close tears down every view.
func (r *ViewRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.views {
		e.view.Close()
		delete(r.views, id)
	}
	r.metrics.SetViewsActive(0)
}

// Run sweeps expired views until ctx is done, then closes the rest.
func (r *ViewRegistry) Run(ctx context.Context) error {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Close()
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("Swept idle views", zap.Int("removed", n))
			}
		}
	}
}
