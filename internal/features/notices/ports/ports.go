package ports

import (
	"context"

	"tracking-viewer/internal/features/notices/domain"
)

// NoticeService defines the primary port for notice operations.
type NoticeService interface {
	Publish(ctx context.Context, message string, level domain.Level, ttlSeconds int) (*domain.Notice, error)
	// Current returns nil, nil when no notice is active.
	Current(ctx context.Context) (*domain.Notice, error)
	Clear(ctx context.Context) error
}

// NoticeRepository defines the secondary port for notice storage.
type NoticeRepository interface {
	Save(ctx context.Context, notice *domain.Notice) error
	// Get returns nil, nil when nothing is stored.
	Get(ctx context.Context) (*domain.Notice, error)
	Delete(ctx context.Context) error
}
