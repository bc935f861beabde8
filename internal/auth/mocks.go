package auth

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockTokenRegistry struct {
	mock.Mock
}

func (m *MockTokenRegistry) Register(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	args := m.Called(ctx, jti, userID, ttl)
	return args.Error(0)
}

func (m *MockTokenRegistry) Exists(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
