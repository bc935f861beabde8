package user

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/itacademy/dice-game-api/internal/apperrors"
)

// Repository is the user store. Find methods return (nil, nil) when no
// record matches.
type Repository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByName(name string) (*User, error)
	UpdateName(id uint, name string) error
	ListAll() ([]User, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(u *User) error {
	if err := r.db.Create(u).Error; err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "error creating user", err)
	}
	return nil
}

func (r *GormRepository) FindByID(id uint) (*User, error) {
	return r.findOne("id = ?", id)
}

func (r *GormRepository) FindByEmail(email string) (*User, error) {
	return r.findOne("email = ?", email)
}

func (r *GormRepository) FindByName(name string) (*User, error) {
	return r.findOne("name = ?", name)
}

func (r *GormRepository) findOne(query string, arg interface{}) (*User, error) {
	var u User
	result := r.db.Where(query, arg).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error finding user", result.Error)
	}
	return &u, nil
}

func (r *GormRepository) UpdateName(id uint, name string) error {
	result := r.db.Model(&User{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "error updating user name", result.Error)
	}
	return nil
}

func (r *GormRepository) ListAll() ([]User, error) {
	var users []User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error listing users", err)
	}
	return users, nil
}
