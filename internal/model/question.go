package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	Category   string         `json:"category" gorm:"not null;index"` // e.g. "data structures", "system design"
	Difficulty string         `json:"difficulty" gorm:"not null"`     // "easy", "medium", "hard"
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
