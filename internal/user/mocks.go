package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/itacademy/dice-game-api/internal/auth"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(u *User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockRepository) FindByID(id uint) (*User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(email string) (*User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByName(name string) (*User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateName(id uint, name string) error {
	args := m.Called(id, name)
	return args.Error(0)
}

func (m *MockRepository) ListAll() ([]User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(ctx context.Context, userID uint, role auth.Role) (string, error) {
	args := m.Called(ctx, userID, role)
	return args.String(0), args.Error(1)
}
