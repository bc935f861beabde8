package game

import (
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(g *Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockRepository) FindByUser(userID uint) ([]Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

func (m *MockRepository) DeleteByUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockRepository) ListAll() ([]Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}

// SequenceSource replays a fixed sequence of draws.
type SequenceSource struct {
	Values []int
	next   int
}

func (s *SequenceSource) IntN(n int) int {
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}
