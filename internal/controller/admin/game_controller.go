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

type GameController struct {
	gameService service.GameService
	userRepo    repository.UserRepository
}

func NewGameController(gameService service.GameService, userRepo repository.UserRepository) *GameController {
	return &GameController{
		gameService: gameService,
		userRepo:    userRepo,
	}
}

// CreateGame godoc
// @Summary Create a game with its questions and options
// @Description Teachers and admins only. Each question is validated against the rules of its question type.
// @Tags Games
// @Accept json
// @Produce json
// @Param game body dto.GameCreateDTO true "Game payload"
// @Success 201 {object} dto.GameResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/games [post]
func (c *GameController) CreateGame(ctx *gin.Context) {
	var req dto.GameCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	creator, err := c.userRepo.FindByID(middleware.UserIDFrom(ctx))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unknown user"})
		return
	}

	game, err := c.gameService.CreateGame(creator, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrInvalidGame):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Msg("CreateGame: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create game"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, game)
}
