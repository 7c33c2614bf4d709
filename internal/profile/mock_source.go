package profile

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// MockSource is a mock implementation of the Source interface
type MockSource struct {
	mock.Mock
}

func (m *MockSource) FetchPlayer(ctx context.Context, name string) (*domain.PlayerProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerProfile), args.Error(1)
}
