package model

import (
	"time"

	"gorm.io/gorm"
)

// Evaluation statuses for an Answer. A record is created as "pending" and is
// moved exactly once, by the background evaluation task, to "completed" (with
// score, feedback and evaluated_at set together) or to "error".
const (
	AnswerPending   = "pending"
	AnswerCompleted = "completed"
	AnswerError     = "error"
)

type Answer struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	InterviewID uint           `json:"interview_id" gorm:"not null;index"`
	QuestionID  uint           `json:"question_id" gorm:"not null;index"`
	Question    Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	AnswerText  string         `json:"answer_text" gorm:"type:text;not null"`
	Confidence  *int           `json:"confidence,omitempty"` // self-rating 1-5
	Status      string         `json:"status" gorm:"default:'pending'"`
	Score       *int           `json:"score,omitempty"` // 0-100, set only when completed
	Feedback    *string        `json:"feedback,omitempty" gorm:"type:text"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	EvaluatedAt *time.Time     `json:"evaluated_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
