package game

import (
	"github.com/itacademy/dice-game-api/internal/auth"
)

type Service struct {
	repo Repository
	dice *Dice
}

func NewService(repo Repository, dice *Dice) *Service {
	return &Service{repo: repo, dice: dice}
}

// RollDice rolls for the target player and records the outcome.
// Exactly one game is created per successful call; a denied call
// creates nothing.
func (s *Service) RollDice(p *auth.Principal, targetID uint) (*Game, error) {
	if err := auth.Authorize(p, auth.ActionRollDice, targetID); err != nil {
		return nil, err
	}

	dice1, dice2, win := s.dice.Roll()
	g := &Game{
		UserID: targetID,
		Dice1:  dice1,
		Dice2:  dice2,
		Win:    win,
	}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

// DeleteGames removes every game the target player owns.
func (s *Service) DeleteGames(p *auth.Principal, targetID uint) error {
	if err := auth.Authorize(p, auth.ActionDeleteGames, targetID); err != nil {
		return err
	}
	return s.repo.DeleteByUser(targetID)
}

// GetGames lists the target player's games in store order.
func (s *Service) GetGames(p *auth.Principal, targetID uint) ([]Game, error) {
	if err := auth.Authorize(p, auth.ActionViewGames, targetID); err != nil {
		return nil, err
	}
	return s.repo.FindByUser(targetID)
}
