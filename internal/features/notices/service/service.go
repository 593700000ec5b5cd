package service

import (
	"context"
	"fmt"
	"time"

	"tracking-viewer/internal/features/notices/domain"
	"tracking-viewer/internal/features/notices/ports"
)

// NoticeServiceImpl implements ports.NoticeService.
type NoticeServiceImpl struct {
	repo ports.NoticeRepository
	now  func() time.Time
}

// NewNoticeService creates a new NoticeServiceImpl.
func NewNoticeService(repo ports.NoticeRepository) *NoticeServiceImpl {
	return &NoticeServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// Publish validates and stores a notice, replacing any previous one.
func (s *NoticeServiceImpl) Publish(ctx context.Context, message string, level domain.Level, ttlSeconds int) (*domain.Notice, error) {
	notice, err := domain.NewNotice(message, level, ttlSeconds, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, notice); err != nil {
		return nil, fmt.Errorf("service: failed to save notice: %w", err)
	}

	return notice, nil
}

// Current retrieves the active notice, or nil.
func (s *NoticeServiceImpl) Current(ctx context.Context) (*domain.Notice, error) {
	notice, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notice: %w", err)
	}

	return notice, nil
}

// Clear deletes the active notice.
func (s *NoticeServiceImpl) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to clear notice: %w", err)
	}

	return nil
}
