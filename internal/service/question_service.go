package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/model"
	"github.com/lshigami/Margays/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(id uint) error
	GetQuestion(id uint) (*dto.QuestionResponseDTO, error)
	ListQuestions(category, difficulty string) ([]dto.QuestionResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question := model.Question{
		Text:       req.Text,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: repository error")
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	return toQuestionDTO(&question)
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}

	question.Text = req.Text
	question.Category = req.Category
	question.Difficulty = req.Difficulty
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: repository error")
		return nil, fmt.Errorf("error updating question %d: %w", id, err)
	}
	return toQuestionDTO(question)
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return s.questionRepo.Delete(id)
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return toQuestionDTO(question)
}

func (s *questionService) ListQuestions(category, difficulty string) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questionRepo.FindAll(category, difficulty)
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		q, err := toQuestionDTO(&questions[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *q)
	}
	return dtos, nil
}

func toQuestionDTO(question *model.Question) (*dto.QuestionResponseDTO, error) {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}
