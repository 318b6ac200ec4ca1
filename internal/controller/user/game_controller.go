package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/controller/middleware"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type GameController struct {
	gameService service.GameService
}

func NewGameController(gameService service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// GetAllGames godoc
// @Summary List all games
// @Tags Games
// @Produce json
// @Success 200 {array} dto.GameSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /games [get]
func (c *GameController) GetAllGames(ctx *gin.Context) {
	games, err := c.gameService.GetAllGames()
	if err != nil {
		log.Error().Err(err).Msg("GetAllGames: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve games"})
		return
	}
	ctx.JSON(http.StatusOK, games)
}

// GetGameDetails godoc
// @Summary Get a game with its questions
// @Description Students receive the questions without the answer keys.
// @Tags Games
// @Produce json
// @Param game_id path int true "Game ID"
// @Success 200 {object} dto.GameResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid game ID"
// @Failure 404 {object} dto.ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{game_id} [get]
func (c *GameController) GetGameDetails(ctx *gin.Context) {
	gameID, err := strconv.ParseUint(ctx.Param("game_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid game ID format"})
		return
	}

	game, err := c.gameService.GetGameDetails(uint(gameID))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("gameID", gameID).Msg("GetGameDetails: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve game"})
		return
	}

	if middleware.RoleFrom(ctx) == model.RoleStudent {
		service.StripAnswerKeys(game)
	}
	ctx.JSON(http.StatusOK, game)
}
