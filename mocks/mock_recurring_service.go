package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billkit/internal/domain"
	"billkit/internal/service"
)

// MockRecurringService is a mock implementation of service.RecurringService.
type MockRecurringService struct {
	mock.Mock
}

func (m *MockRecurringService) Create(ctx context.Context, input service.CreateProfileInput) (*domain.RecurringProfile, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringProfile), args.Error(1)
}

func (m *MockRecurringService) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringProfile), args.Error(1)
}

func (m *MockRecurringService) List(ctx context.Context, status domain.ProfileStatus, offset, limit int) ([]domain.RecurringProfile, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RecurringProfile), args.Int(1), args.Error(2)
}

func (m *MockRecurringService) Pause(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	return m.profileResult(m.Called(ctx, id))
}

func (m *MockRecurringService) Resume(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	return m.profileResult(m.Called(ctx, id))
}

func (m *MockRecurringService) Stop(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	return m.profileResult(m.Called(ctx, id))
}

func (m *MockRecurringService) Tick(ctx context.Context, id uuid.UUID, asOf time.Time) (*service.TickOutcome, error) {
	args := m.Called(ctx, id, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TickOutcome), args.Error(1)
}

func (m *MockRecurringService) Generations(ctx context.Context, id uuid.UUID) ([]domain.GenerationLogEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GenerationLogEntry), args.Error(1)
}

func (m *MockRecurringService) RunDue(ctx context.Context, asOf time.Time) (*service.RunSummary, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RunSummary), args.Error(1)
}

func (m *MockRecurringService) profileResult(args mock.Arguments) (*domain.RecurringProfile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringProfile), args.Error(1)
}
