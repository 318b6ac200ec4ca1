package service

import (
	"errors"
	"fmt"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type GameService interface {
	CreateGame(creator *model.User, req dto.GameCreateDTO) (*dto.GameResponseDTO, error)
	GetAllGames() ([]dto.GameSummaryDTO, error)
	GetGameDetails(gameID uint) (*dto.GameResponseDTO, error)
}

type gameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) CreateGame(creator *model.User, req dto.GameCreateDTO) (*dto.GameResponseDTO, error) {
	if creator.Role != model.RoleTeacher && creator.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		question, err := buildQuestion(qDto)
		if err != nil {
			return nil, fmt.Errorf("%w: question %d (%q): %v", ErrInvalidGame, i+1, qDto.QuestionText, err)
		}
		questions = append(questions, *question)
	}

	game := model.Game{
		Title:         req.Title,
		BadgesAwarded: req.BadgesAwarded,
		Questions:     questions,
	}
	if err := s.gameRepo.Create(&game); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateGame: database error")
		return nil, fmt.Errorf("creating game: %w", err)
	}

	created, err := s.gameRepo.FindByIDWithQuestions(game.ID)
	if err != nil {
		log.Error().Err(err).Uint("gameID", game.ID).Msg("CreateGame: failed to reload created game")
		created = &game
	}

	var resp dto.GameResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("preparing game response: %w", err)
	}
	return &resp, nil
}

// buildQuestion validates one incoming question against the invariants of
// its kind and converts it to the model shape.
func buildQuestion(qDto dto.QuestionCreateDTO) (*model.Question, error) {
	question := model.Question{
		QuestionText: qDto.QuestionText,
		QuestionType: qDto.QuestionType,
		Points:       qDto.Points,
	}

	switch qDto.QuestionType {
	case model.QuestionTypeFillInTheBlank:
		if qDto.CorrectAnswer == nil || *qDto.CorrectAnswer == "" {
			return nil, errors.New("correct_answer is required for fill_in_the_blank questions")
		}
		question.CorrectAnswer = qDto.CorrectAnswer
		// Options, if sent, are ignored for this kind.
		return &question, nil

	case model.QuestionTypeQuiz, model.QuestionTypeDragAndDrop:
		hasCorrect := false
		for _, opt := range qDto.Options {
			if opt.IsCorrect {
				hasCorrect = true
				break
			}
		}
		if !hasCorrect {
			return nil, errors.New("at least one option must be marked correct")
		}

	case model.QuestionTypeMatchTheColumn:
		seen := make(map[int]bool, len(qDto.Options))
		for _, opt := range qDto.Options {
			if opt.Order == nil {
				return nil, errors.New("every match_the_column option needs an order")
			}
			if seen[*opt.Order] {
				return nil, fmt.Errorf("duplicate option order %d", *opt.Order)
			}
			seen[*opt.Order] = true
		}
		if len(qDto.Options) == 0 {
			return nil, errors.New("match_the_column questions need options")
		}

	case model.QuestionTypeWordHunt:
		if len(qDto.Options) == 0 {
			return nil, errors.New("word_hunt questions need options")
		}

	default:
		return nil, fmt.Errorf("unsupported question type %q", qDto.QuestionType)
	}

	for _, opt := range qDto.Options {
		question.Options = append(question.Options, model.Option{
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
			Order:      opt.Order,
		})
	}
	return &question, nil
}

func (s *gameService) GetAllGames() ([]dto.GameSummaryDTO, error) {
	gamesWithCount, err := s.gameRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllGames: repository error")
		return nil, fmt.Errorf("fetching games: %w", err)
	}

	var summaries []dto.GameSummaryDTO
	for _, gwc := range gamesWithCount {
		summaries = append(summaries, dto.GameSummaryDTO{
			ID:            gwc.ID,
			Title:         gwc.Title,
			BadgesAwarded: gwc.BadgesAwarded,
			QuestionCount: gwc.QuestionCount,
			CreatedAt:     gwc.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *gameService) GetGameDetails(gameID uint) (*dto.GameResponseDTO, error) {
	game, err := s.gameRepo.FindByIDWithQuestions(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("fetching game %d: %w", gameID, err)
	}

	var resp dto.GameResponseDTO
	if err := copier.Copy(&resp, game); err != nil {
		return nil, fmt.Errorf("preparing game response: %w", err)
	}
	return &resp, nil
}

// StripAnswerKeys clears the fields that give the answers away before a game
// is shown to a student.
func StripAnswerKeys(game *dto.GameResponseDTO) {
	for qi := range game.Questions {
		game.Questions[qi].CorrectAnswer = nil
		for oi := range game.Questions[qi].Options {
			game.Questions[qi].Options[oi].IsCorrect = false
		}
	}
}
