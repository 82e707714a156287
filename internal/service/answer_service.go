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

// AnswerService owns the submission lifecycle: an answer is created as
// "pending", the caller gets its id immediately, and a detached task scores
// it and moves it to "completed" (or "error" if the question is missing or
// the result cannot be stored).
type AnswerService interface {
	Submit(userID uint, req dto.AnswerSubmitDTO) (*dto.AnswerSubmitResponseDTO, error)
	GetEvaluation(userID, answerID uint) (*dto.AnswerEvaluationDTO, error)
	ListByInterview(userID, interviewID uint) ([]dto.AnswerResponseDTO, error)
}

type answerService struct {
	answerRepo    repository.AnswerRepository
	questionRepo  repository.QuestionRepository
	interviewRepo repository.InterviewRepository
	evaluator     EvaluationService
}

func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	interviewRepo repository.InterviewRepository,
	evaluator EvaluationService,
) AnswerService {
	return &answerService{
		answerRepo:    answerRepo,
		questionRepo:  questionRepo,
		interviewRepo: interviewRepo,
		evaluator:     evaluator,
	}
}

func (s *answerService) Submit(userID uint, req dto.AnswerSubmitDTO) (*dto.AnswerSubmitResponseDTO, error) {
	interview, err := s.interviewRepo.FindByID(req.InterviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Uint("interviewID", req.InterviewID).Msg("Submit: interview lookup failed")
		return nil, fmt.Errorf("error fetching interview %d: %w", req.InterviewID, err)
	}
	if interview.UserID != userID {
		return nil, ErrForbidden
	}
	if interview.Status != model.InterviewInProgress {
		return nil, ErrInterviewNotActive
	}

	answer := model.Answer{
		InterviewID: req.InterviewID,
		QuestionID:  req.QuestionID,
		UserID:      userID,
		AnswerText:  req.AnswerText,
		Confidence:  req.Confidence,
		Status:      model.AnswerPending,
	}
	if err := s.answerRepo.Create(&answer); err != nil {
		log.Error().Err(err).Uint("interviewID", req.InterviewID).Msg("Submit: failed to create answer record")
		return nil, fmt.Errorf("error creating answer record: %w", err)
	}

	// Scoring happens after the response is sent. Failures are logged and
	// surface to the client only through the answer's status.
	go s.evaluate(answer)

	return &dto.AnswerSubmitResponseDTO{
		AnswerID: answer.ID,
		Status:   "evaluating",
		Message:  "Answer submitted. Evaluation runs in the background; poll the evaluation endpoint for the result.",
	}, nil
}

// evaluate runs the detached scoring task for one freshly created answer.
func (s *answerService) evaluate(answer model.Answer) {
	question, err := s.questionRepo.FindByID(answer.QuestionID)
	if err != nil {
		log.Error().Err(err).Uint("answerID", answer.ID).Uint("questionID", answer.QuestionID).
			Msg("evaluate: question lookup failed, marking answer as error")
		if markErr := s.answerRepo.MarkError(answer.ID, "The referenced question could not be found."); markErr != nil {
			log.Error().Err(markErr).Uint("answerID", answer.ID).Msg("evaluate: failed to mark answer as error")
		}
		return
	}

	result := s.evaluator.Evaluate(question, answer.AnswerText)

	if err := s.answerRepo.ApplyEvaluation(answer.ID, result.Score, result.Feedback); err != nil {
		log.Error().Err(err).Uint("answerID", answer.ID).Msg("evaluate: failed to store evaluation result")
		if markErr := s.answerRepo.MarkError(answer.ID, "The evaluation result could not be stored."); markErr != nil {
			log.Error().Err(markErr).Uint("answerID", answer.ID).Msg("evaluate: failed to mark answer as error")
		}
		return
	}

	log.Info().Uint("answerID", answer.ID).Int("score", result.Score).Msg("Answer evaluation completed")
}

func (s *answerService) GetEvaluation(userID, answerID uint) (*dto.AnswerEvaluationDTO, error) {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching answer %d: %w", answerID, err)
	}
	if answer.UserID != userID {
		return nil, ErrForbidden
	}

	return &dto.AnswerEvaluationDTO{
		AnswerID:    answer.ID,
		Status:      answer.Status,
		Score:       answer.Score,
		Feedback:    answer.Feedback,
		EvaluatedAt: answer.EvaluatedAt,
	}, nil
}

func (s *answerService) ListByInterview(userID, interviewID uint) ([]dto.AnswerResponseDTO, error) {
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

	answers, err := s.answerRepo.FindByInterviewID(interviewID)
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("ListByInterview: repository error")
		return nil, fmt.Errorf("error fetching answers for interview %d: %w", interviewID, err)
	}

	dtos := make([]dto.AnswerResponseDTO, 0, len(answers))
	for i := range answers {
		var d dto.AnswerResponseDTO
		if err := copier.Copy(&d, &answers[i]); err != nil {
			return nil, fmt.Errorf("error preparing answer response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
