package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billkit/internal/domain"
)

// MockRecurringProfileRepo is a mock implementation of port.RecurringProfileRepository.
type MockRecurringProfileRepo struct {
	mock.Mock
}

func (m *MockRecurringProfileRepo) Create(ctx context.Context, p *domain.RecurringProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRecurringProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringProfile), args.Error(1)
}

func (m *MockRecurringProfileRepo) List(ctx context.Context, status domain.ProfileStatus, offset, limit int) ([]domain.RecurringProfile, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RecurringProfile), args.Int(1), args.Error(2)
}

func (m *MockRecurringProfileRepo) Update(ctx context.Context, p *domain.RecurringProfile, expectedVersion int) error {
	args := m.Called(ctx, p, expectedVersion)
	return args.Error(0)
}

func (m *MockRecurringProfileRepo) ListDue(ctx context.Context, asOf time.Time, limit int) ([]domain.RecurringProfile, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringProfile), args.Error(1)
}
