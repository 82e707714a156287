package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/model"
	"github.com/lshigami/Margays/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type InterviewService interface {
	StartInterview(userID uint, req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error)
	CompleteInterview(userID, interviewID uint) (*dto.InterviewResponseDTO, error)
	ListInterviews(userID uint) ([]dto.InterviewResponseDTO, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
}

func NewInterviewService(interviewRepo repository.InterviewRepository) InterviewService {
	return &interviewService{interviewRepo: interviewRepo}
}

func (s *interviewService) StartInterview(userID uint, req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error) {
	interview := model.Interview{
		UserID:    userID,
		Title:     req.Title,
		Status:    model.InterviewInProgress,
		StartedAt: time.Now(),
	}
	if err := s.interviewRepo.Create(&interview); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartInterview: repository error")
		return nil, fmt.Errorf("error creating interview: %w", err)
	}
	return toInterviewDTO(&interview)
}

func (s *interviewService) CompleteInterview(userID, interviewID uint) (*dto.InterviewResponseDTO, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching interview %d: %w", interviewID, err)
	}
	if interview.UserID != userID {
		return nil, ErrForbidden
	}
	if interview.Status != model.InterviewInProgress {
		return nil, ErrInterviewNotActive
	}

	now := time.Now()
	interview.Status = model.InterviewCompleted
	interview.CompletedAt = &now
	if err := s.interviewRepo.Update(interview); err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("CompleteInterview: repository error")
		return nil, fmt.Errorf("error completing interview %d: %w", interviewID, err)
	}
	return toInterviewDTO(interview)
}

func (s *interviewService) ListInterviews(userID uint) ([]dto.InterviewResponseDTO, error) {
	interviews, err := s.interviewRepo.FindAllByUserID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListInterviews: repository error")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	dtos := make([]dto.InterviewResponseDTO, 0, len(interviews))
	for i := range interviews {
		d, err := toInterviewDTO(&interviews[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func toInterviewDTO(interview *model.Interview) (*dto.InterviewResponseDTO, error) {
	var resp dto.InterviewResponseDTO
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	return &resp, nil
}
