package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margays/internal/dto"
	"github.com/lshigami/Margays/internal/service"
	"github.com/lshigami/Margays/internal/util"
)

type InterviewController struct {
	interviewService service.InterviewService
	answerService    service.AnswerService
}

func NewInterviewController(interviewService service.InterviewService, answerService service.AnswerService) *InterviewController {
	return &InterviewController{interviewService: interviewService, answerService: answerService}
}

// StartInterview godoc
// @Summary Start an interview session
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview body dto.InterviewCreateDTO true "Session title"
// @Success 201 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
		return
	}

	var req dto.InterviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	interview, err := c.interviewService.StartInterview(claims.UserID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, interview)
}

// CompleteInterview godoc
// @Summary Mark an interview session as completed
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or interview not in progress"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{interview_id}/complete [post]
func (c *InterviewController) CompleteInterview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
		return
	}

	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Interview ID format"})
		return
	}

	interview, err := c.interviewService.CompleteInterview(claims.UserID, uint(interviewID))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, interview)
}

// ListInterviews godoc
// @Summary List the caller's interview sessions
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
		return
	}

	interviews, err := c.interviewService.ListInterviews(claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, interviews)
}

// ListInterviewAnswers godoc
// @Summary List all answers of an interview session
// @Description Read-only projection over the answer store; includes pending answers.
// @Tags Answers
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {array} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Interview ID format"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{interview_id}/answers [get]
func (c *InterviewController) ListInterviewAnswers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authentication token"})
		return
	}

	interviewID, err := strconv.ParseUint(ctx.Param("interview_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Interview ID format"})
		return
	}

	answers, err := c.answerService.ListByInterview(claims.UserID, uint(interviewID))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}
