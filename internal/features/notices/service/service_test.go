package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracking-viewer/internal/features/notices/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNoticeRepository is a mock implementation of ports.NoticeRepository
type MockNoticeRepository struct {
	mock.Mock
}

func (m *MockNoticeRepository) Save(ctx context.Context, notice *domain.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) Get(ctx context.Context) (*domain.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *MockNoticeRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestNoticeService_Publish(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)
		svc.now = func() time.Time { return fixed }

		mockRepo.On("Save", ctx, mock.MatchedBy(func(n *domain.Notice) bool {
			return n.Message == "Delays expected" && n.Level == domain.LevelWarning && n.CreatedAt.Equal(fixed)
		})).Return(nil).Once()

		n, err := svc.Publish(ctx, "Delays expected", domain.LevelWarning, 60)
		require.NoError(t, err)
		assert.Equal(t, 60, n.TTLSeconds)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)

		_, err := svc.Publish(ctx, "Hello", "INVALID", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidLevel)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)

		mockRepo.On("Save", ctx, mock.AnythingOfType("*domain.Notice")).Return(errors.New("redis down")).Once()

		_, err := svc.Publish(ctx, "Hello", domain.LevelInfo, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service: failed to save notice")
		mockRepo.AssertExpectations(t)
	})
}

func TestNoticeService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)

		expected := &domain.Notice{Message: "Hello", Level: domain.LevelInfo}
		mockRepo.On("Get", ctx).Return(expected, nil).Once()

		n, err := svc.Current(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, n)
		mockRepo.AssertExpectations(t)
	})

	t.Run("None", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)

		mockRepo.On("Get", ctx).Return(nil, nil).Once()

		n, err := svc.Current(ctx)
		assert.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)

		mockRepo.On("Get", ctx).Return(nil, errors.New("redis down")).Once()

		n, err := svc.Current(ctx)
		assert.Error(t, err)
		assert.Nil(t, n)
	})
}

func TestNoticeService_Clear(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)

		mockRepo.On("Delete", ctx).Return(nil).Once()
		assert.NoError(t, svc.Clear(ctx))
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockNoticeRepository)
		svc := NewNoticeService(mockRepo)

		mockRepo.On("Delete", ctx).Return(errors.New("redis down")).Once()
		assert.Error(t, svc.Clear(ctx))
	})
}
