package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tracking-viewer/internal/core/cache"
	"tracking-viewer/internal/features/notices/domain"
)

const noticeCacheKey = "notice"

// RedisNoticeRepository implements ports.NoticeRepository on the shared cache.
type RedisNoticeRepository struct {
	cache cache.Cache
}

// NewRedisNoticeRepository creates a new RedisNoticeRepository.
func NewRedisNoticeRepository(c cache.Cache) *RedisNoticeRepository {
	return &RedisNoticeRepository{
		cache: c,
	}
}

// Save stores the notice, expiring it after its TTL (0 keeps it until deleted).
func (r *RedisNoticeRepository) Save(ctx context.Context, notice *domain.Notice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	if err := r.cache.Set(ctx, noticeCacheKey, data, notice.TTL()); err != nil {
		return fmt.Errorf("failed to save notice to cache: %w", err)
	}

	return nil
}

// Get retrieves the stored notice with its remaining lifetime filled in.
func (r *RedisNoticeRepository) Get(ctx context.Context) (*domain.Notice, error) {
	data, err := r.cache.Get(ctx, noticeCacheKey)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notice from cache: %w", err)
	}

	var notice domain.Notice
	if err := json.Unmarshal(data, &notice); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notice: %w", err)
	}

	if notice.TTLSeconds > 0 {
		remaining, err := r.cache.TTL(ctx, noticeCacheKey)
		switch {
		case errors.Is(err, cache.ErrNotFound):
			// expired between the two reads
			return nil, nil
		case err != nil:
			return nil, fmt.Errorf("failed to read notice ttl: %w", err)
		}
		notice.ExpiresInSeconds = int(remaining.Seconds())
	}

	return &notice, nil
}

// Delete removes the notice.
func (r *RedisNoticeRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, noticeCacheKey); err != nil {
		return fmt.Errorf("failed to delete notice from cache: %w", err)
	}
	return nil
}
