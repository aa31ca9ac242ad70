package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/building-identifier/internal/domain"
	"github.com/building-identifier/internal/usecase"
)

func sampleEvent() *domain.IdentificationEvent {
	return domain.NewIdentificationEvent(
		query(40.0, -73.0, 10, 100),
		domain.BuildingMatch{BuildingID: "MOCK_1", BearingDeg: 22, Confidence: 0.84},
		fixedNow.UnixMilli(),
	)
}

func TestAuditUseCase_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("stores new event", func(t *testing.T) {
		repo := &MockAuditRepository{}
		uc := usecase.NewAuditUseCase(repo, zap.NewNop())
		event := sampleEvent()

		repo.On("SaveEvent", ctx, event).Return(true, nil).Once()

		inserted, err := uc.Record(ctx, event)
		require.NoError(t, err)
		assert.True(t, inserted)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate is not an error", func(t *testing.T) {
		repo := &MockAuditRepository{}
		uc := usecase.NewAuditUseCase(repo, zap.NewNop())
		event := sampleEvent()

		repo.On("SaveEvent", ctx, event).Return(false, nil).Once()

		inserted, err := uc.Record(ctx, event)
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("invalid event never reaches the repository", func(t *testing.T) {
		repo := &MockAuditRepository{}
		uc := usecase.NewAuditUseCase(repo, zap.NewNop())
		event := sampleEvent()
		event.EventID = uuid.Nil

		_, err := uc.Record(ctx, event)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "SaveEvent", mock.Anything, mock.Anything)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := &MockAuditRepository{}
		uc := usecase.NewAuditUseCase(repo, zap.NewNop())
		dbErr := errors.New("connection refused")

		repo.On("SaveEvent", ctx, mock.Anything).Return(false, dbErr).Once()

		_, err := uc.Record(ctx, sampleEvent())
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuditUseCase_Stats(t *testing.T) {
	ctx := context.Background()
	repo := &MockAuditRepository{}
	uc := usecase.NewAuditUseCase(repo, zap.NewNop())

	want := &domain.AuditStats{
		TotalIdentifications: 3,
		DistinctBuildings:    1,
		FirstSeen:            fixedNow,
		LastSeen:             fixedNow.Add(time.Minute),
	}
	repo.On("Stats", ctx).Return(want, nil).Once()

	got, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	repo.On("Stats", ctx).Return(nil, errors.New("boom")).Once()
	_, err = uc.Stats(ctx)
	assert.Error(t, err)
}
