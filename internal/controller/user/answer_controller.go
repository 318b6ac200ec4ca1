package user

import (
	"errors"
	"net/http"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/controller/middleware"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AnswerController struct {
	submissionService service.SubmissionService
}

func NewAnswerController(submissionService service.SubmissionService) *AnswerController {
	return &AnswerController{submissionService: submissionService}
}

// SubmitAnswer godoc
// @Summary Submit an answer to a question
// @Description Evaluates the answer, applies points to the student's ledger and checks every game containing the question for completion.
// @Tags Answers
// @Accept json
// @Produce json
// @Param body body dto.AnswerSubmissionDTO true "The answer"
// @Success 200 {object} dto.AnswerResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 503 {object} dto.ErrorResponse "Too many concurrent updates"
// @Security BearerAuth
// @Router /answers [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerSubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	studentID := middleware.UserIDFrom(ctx)
	result, err := c.submissionService.SubmitAnswer(ctx.Request.Context(), studentID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, service.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrConflict):
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("studentID", studentID).Msg("SubmitAnswer: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to process submission"})
		}
		return
	}
	ctx.JSON(http.StatusOK, result)
}
