package repository

import (
	"time"

	"github.com/lshigami/Margays/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	// ApplyEvaluation replaces the record with score/feedback set, status
	// "completed" and the evaluation timestamp. Returns
	// gorm.ErrRecordNotFound for an unknown id. Last write wins.
	ApplyEvaluation(id uint, score int, feedback string) error
	// MarkError transitions the record to "error" with a short message in the
	// feedback field. Score stays unset.
	MarkError(id uint, message string) error
	FindByID(id uint) (*model.Answer, error)
	FindByInterviewID(interviewID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) ApplyEvaluation(id uint, score int, feedback string) error {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		return err
	}
	now := time.Now()
	answer.Score = &score
	answer.Feedback = &feedback
	answer.Status = model.AnswerCompleted
	answer.EvaluatedAt = &now
	return r.db.Save(&answer).Error
}

func (r *answerRepository) MarkError(id uint, message string) error {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		return err
	}
	answer.Status = model.AnswerError
	answer.Feedback = &message
	return r.db.Save(&answer).Error
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByInterviewID(interviewID uint) ([]model.Answer, error) {
	var answers []model.Answer
	// Insertion order keeps the listing deterministic.
	err := r.db.Where("interview_id = ?", interviewID).Order("submitted_at ASC, id ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
