package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type AuthResponseDTO struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}

type UserResponseDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type QuestionResponseDTO struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
}

type InterviewResponseDTO struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AnswerSubmitResponseDTO is returned immediately after a submission, before
// the background evaluation has run.
type AnswerSubmitResponseDTO struct {
	AnswerID uint   `json:"answerId"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// AnswerEvaluationDTO is the polling projection of a single answer. Score,
// feedback and evaluated_at are only present once the status is "completed"
// (feedback is also set on "error", carrying the failure message).
type AnswerEvaluationDTO struct {
	AnswerID    uint       `json:"answerId"`
	Status      string     `json:"status"`
	Score       *int       `json:"score,omitempty"`
	Feedback    *string    `json:"feedback,omitempty"`
	EvaluatedAt *time.Time `json:"evaluatedAt,omitempty"`
}

type AnswerResponseDTO struct {
	ID          uint       `json:"id"`
	InterviewID uint       `json:"interview_id"`
	QuestionID  uint       `json:"question_id"`
	UserID      uint       `json:"user_id"`
	AnswerText  string     `json:"answer_text"`
	Confidence  *int       `json:"confidence,omitempty"`
	Status      string     `json:"status"`
	Score       *int       `json:"score,omitempty"`
	Feedback    *string    `json:"feedback,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	EvaluatedAt *time.Time `json:"evaluated_at,omitempty"`
}
