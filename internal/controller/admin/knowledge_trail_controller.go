package admin

import (
	"errors"
	"net/http"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/controller/middleware"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type KnowledgeTrailController struct {
	trailService service.KnowledgeTrailService
	userRepo     repository.UserRepository
}

func NewKnowledgeTrailController(trailService service.KnowledgeTrailService, userRepo repository.UserRepository) *KnowledgeTrailController {
	return &KnowledgeTrailController{
		trailService: trailService,
		userRepo:     userRepo,
	}
}

// CreateKnowledgeTrail godoc
// @Summary Assign a study resource (video or PDF)
// @Tags KnowledgeTrails
// @Accept json
// @Produce json
// @Param trail body dto.KnowledgeTrailCreateDTO true "Resource metadata"
// @Success 201 {object} dto.KnowledgeTrailResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/knowledge-trails [post]
func (c *KnowledgeTrailController) CreateKnowledgeTrail(ctx *gin.Context) {
	var req dto.KnowledgeTrailCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	creator, err := c.userRepo.FindByID(middleware.UserIDFrom(ctx))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unknown user"})
		return
	}

	trail, err := c.trailService.Create(creator, req)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateKnowledgeTrail: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create knowledge trail"})
		return
	}
	ctx.JSON(http.StatusCreated, trail)
}
