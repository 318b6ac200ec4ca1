package admin

import (
	"net/http"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StatisticsController struct {
	statisticsService service.StatisticsService
}

func NewStatisticsController(statisticsService service.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

// GetAdminStats godoc
// @Summary Platform-wide counters with deltas since the previous read
// @Tags Statistics
// @Produce json
// @Success 200 {object} dto.AdminStatsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /statistics/admin-stats [get]
func (c *StatisticsController) GetAdminStats(ctx *gin.Context) {
	stats, err := c.statisticsService.AdminStats()
	if err != nil {
		log.Error().Err(err).Msg("GetAdminStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute statistics"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetTeacherStats godoc
// @Summary Teaching counters with deltas since the previous read
// @Tags Statistics
// @Produce json
// @Success 200 {object} dto.TeacherStatsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /statistics/teacher-stats [get]
func (c *StatisticsController) GetTeacherStats(ctx *gin.Context) {
	stats, err := c.statisticsService.TeacherStats()
	if err != nil {
		log.Error().Err(err).Msg("GetTeacherStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute statistics"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
