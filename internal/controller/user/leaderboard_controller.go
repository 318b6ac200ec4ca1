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

type LeaderboardController struct {
	leaderboardService service.LeaderboardService
	statisticsService  service.StatisticsService
}

func NewLeaderboardController(leaderboardService service.LeaderboardService, statisticsService service.StatisticsService) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
		statisticsService:  statisticsService,
	}
}

// GetLeaderboard godoc
// @Summary Ranked leaderboard of students by total game score
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.leaderboardService.Rank(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// GetDashboard godoc
// @Summary Student home-screen summary
// @Description Points, medals, level, rank and the top-3 classification for the authenticated student.
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} dto.DashboardDTO
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (c *LeaderboardController) GetDashboard(ctx *gin.Context) {
	studentID := middleware.UserIDFrom(ctx)
	board, err := c.leaderboardService.Dashboard(ctx.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetDashboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to build dashboard"})
		return
	}
	ctx.JSON(http.StatusOK, board)
}

// GetStudentStats godoc
// @Summary Per-student statistics with deltas since the previous read
// @Tags Statistics
// @Produce json
// @Success 200 {object} dto.StudentStatsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /statistics/student-stats [get]
func (c *LeaderboardController) GetStudentStats(ctx *gin.Context) {
	studentID := middleware.UserIDFrom(ctx)
	stats, err := c.statisticsService.StudentStats(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetStudentStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute statistics"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
