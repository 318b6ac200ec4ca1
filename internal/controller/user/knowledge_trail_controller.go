package user

import (
	"net/http"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type KnowledgeTrailController struct {
	trailService service.KnowledgeTrailService
}

func NewKnowledgeTrailController(trailService service.KnowledgeTrailService) *KnowledgeTrailController {
	return &KnowledgeTrailController{trailService: trailService}
}

// GetKnowledgeTrails godoc
// @Summary List assigned study resources
// @Tags KnowledgeTrails
// @Produce json
// @Success 200 {array} dto.KnowledgeTrailResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /knowledge-trails [get]
func (c *KnowledgeTrailController) GetKnowledgeTrails(ctx *gin.Context) {
	trails, err := c.trailService.List()
	if err != nil {
		log.Error().Err(err).Msg("GetKnowledgeTrails: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list knowledge trails"})
		return
	}
	ctx.JSON(http.StatusOK, trails)
}
