package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billkit/internal/domain"
)

// MockGenerationLogRepo is a mock implementation of port.GenerationLogRepository.
type MockGenerationLogRepo struct {
	mock.Mock
}

func (m *MockGenerationLogRepo) Claim(ctx context.Context, entry *domain.GenerationLogEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockGenerationLogRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.GenerationLogEntry, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GenerationLogEntry), args.Error(1)
}
