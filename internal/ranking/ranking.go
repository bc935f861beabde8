// Package ranking derives player statistics from the current game set.
// Nothing here is persisted or cached; every call recomputes from the
// stores.
package ranking

import (
	"net/http"
	"sort"

	"github.com/itacademy/dice-game-api/internal/apperrors"
	"github.com/itacademy/dice-game-api/internal/auth"
	"github.com/itacademy/dice-game-api/internal/game"
	"github.com/itacademy/dice-game-api/internal/user"
)

// PlayerStats is a player profile with their success rate, as served
// by the admin player listing.
type PlayerStats struct {
	ID                       uint    `json:"id"`
	Name                     string  `json:"name"`
	Email                    string  `json:"email"`
	AverageSuccessPercentage float64 `json:"average_success_percentage"`
}

// Entry is a single ranking position, as served by winner and loser.
type Entry struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	SuccessRate float64 `json:"success_rate"`
}

// SuccessRate is the percentage of games won. A player with no games
// has a rate of zero.
func SuccessRate(games []game.Game) float64 {
	if len(games) == 0 {
		return 0
	}
	wins := 0
	for _, g := range games {
		if g.Win {
			wins++
		}
	}
	return float64(wins) / float64(len(games)) * 100
}

type Service struct {
	users user.Repository
	games game.Repository
}

func NewService(users user.Repository, games game.Repository) *Service {
	return &Service{users: users, games: games}
}

// entries computes one ranking entry per user, in store order.
func (s *Service) entries() ([]Entry, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, err
	}
	games, err := s.games.ListAll()
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint][]game.Game, len(users))
	for _, g := range games {
		byUser[g.UserID] = append(byUser[g.UserID], g)
	}

	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			SuccessRate: SuccessRate(byUser[u.ID]),
		})
	}
	return entries, nil
}

// Index lists every player with their success rate, unsorted.
func (s *Service) Index(p *auth.Principal) ([]PlayerStats, error) {
	if err := auth.Authorize(p, auth.ActionListPlayers, 0); err != nil {
		return nil, err
	}
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	stats := make([]PlayerStats, 0, len(entries))
	for _, e := range entries {
		stats = append(stats, PlayerStats{
			ID:                       e.ID,
			Name:                     e.Name,
			Email:                    e.Email,
			AverageSuccessPercentage: e.SuccessRate,
		})
	}
	return stats, nil
}

// Average is the mean of the per-player success rates. It deliberately
// weighs every player the same regardless of how many games they
// played; zero players yields zero.
func (s *Service) Average(p *auth.Principal) (float64, error) {
	if err := auth.Authorize(p, auth.ActionViewRanking, 0); err != nil {
		return 0, err
	}
	entries, err := s.entries()
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	total := 0.0
	for _, e := range entries {
		total += e.SuccessRate
	}
	return total / float64(len(entries)), nil
}

// Winner returns the player with the highest success rate. Ties keep
// store enumeration order.
func (s *Service) Winner(p *auth.Principal) (*Entry, error) {
	if err := auth.Authorize(p, auth.ActionViewWinner, 0); err != nil {
		return nil, err
	}
	return s.first(func(a, b Entry) bool { return a.SuccessRate > b.SuccessRate })
}

// Loser returns the player with the lowest success rate.
func (s *Service) Loser(p *auth.Principal) (*Entry, error) {
	if err := auth.Authorize(p, auth.ActionViewLoser, 0); err != nil {
		return nil, err
	}
	return s.first(func(a, b Entry) bool { return a.SuccessRate < b.SuccessRate })
}

func (s *Service) first(less func(a, b Entry) bool) (*Entry, error) {
	entries, err := s.entries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NewAppError(http.StatusNotFound, "No players found.", nil)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
	return &entries[0], nil
}
