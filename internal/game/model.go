package game

import "time"

// Game is one recorded dice roll. Rolls are immutable once created;
// the only mutation the store allows is bulk deletion per player.
type Game struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Dice1     int       `gorm:"not null" json:"dice1"`
	Dice2     int       `gorm:"not null" json:"dice2"`
	Win       bool      `gorm:"not null" json:"win"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
