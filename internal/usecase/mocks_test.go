package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/building-identifier/internal/domain"
)

// MockEventPublisher is a mock of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockAuditRepository is a mock of AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveEvent(ctx context.Context, event *domain.IdentificationEvent) (bool, error) {
	args := m.Called(ctx, event)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuditRepository) Stats(ctx context.Context) (*domain.AuditStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditStats), args.Error(1)
}
