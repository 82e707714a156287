package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/service"
	"github.com/lshigami/Margays/internal/util"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// SubmitAnswer godoc
// @Summary Submit an answer for evaluation
// @Description Creates the answer in "pending" state and returns immediately; scoring runs in the background. Poll the evaluation endpoint for the result.
// @Tags Answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.AnswerSubmitDTO true "Interview, question, answer text and optional 1-5 confidence"
// @Success 202 {object} dto.AnswerSubmitResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or interview not in progress"
// @Failure 403 {object} dto.ErrorResponse "Not the owner of the interview"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers/submit [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
		return
	}

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("userID", claims.UserID).Uint("interviewID", req.InterviewID).Uint("questionID", req.QuestionID).
		Msg("Received answer submission")

	resp, err := c.answerService.Submit(claims.UserID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, resp)
}

// GetAnswerEvaluation godoc
// @Summary Poll the evaluation of an answer
// @Description Returns the answer's lifecycle status. Score, feedback and evaluatedAt appear together once the status is "completed".
// @Tags Answers
// @Produce json
// @Security BearerAuth
// @Param answer_id path int true "Answer ID"
// @Success 200 {object} dto.AnswerEvaluationDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Answer ID format"
// @Failure 403 {object} dto.ErrorResponse "Not the owner of the answer"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answers/{answer_id}/evaluation [get]
func (c *AnswerController) GetAnswerEvaluation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
		return
	}

	answerID, err := strconv.ParseUint(ctx.Param("answer_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Answer ID format"})
		return
	}

	evaluation, err := c.answerService.GetEvaluation(claims.UserID, uint(answerID))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, evaluation)
}
