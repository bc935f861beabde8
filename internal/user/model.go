package user

import (
	"time"

	"github.com/itacademy/dice-game-api/internal/auth"
)

// DefaultName is assigned when registration omits a display name.
const DefaultName = "Anonymous"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      auth.Role `gorm:"type:varchar(16);not null;default:player" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}
