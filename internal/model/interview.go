package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewInProgress = "in_progress"
	InterviewCompleted  = "completed"
)

type Interview struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Status      string         `json:"status" gorm:"default:'in_progress'"` // "in_progress", "completed"
	StartedAt   time.Time      `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:InterviewID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
