package game

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/itacademy/dice-game-api/internal/apperrors"
)

// Repository is the game store.
type Repository interface {
	Create(g *Game) error
	FindByUser(userID uint) ([]Game, error)
	DeleteByUser(userID uint) error
	ListAll() ([]Game, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(g *Game) error {
	if err := r.db.Create(g).Error; err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "error creating game", err)
	}
	return nil
}

func (r *GormRepository) FindByUser(userID uint) ([]Game, error) {
	var games []Game
	if err := r.db.Where("user_id = ?", userID).Find(&games).Error; err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error finding games", err)
	}
	return games, nil
}

func (r *GormRepository) DeleteByUser(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&Game{}).Error; err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "error deleting games", err)
	}
	return nil
}

func (r *GormRepository) ListAll() ([]Game, error) {
	var games []Game
	if err := r.db.Find(&games).Error; err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error listing games", err)
	}
	return games, nil
}
