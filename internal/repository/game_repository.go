package repository

import (
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
)

type GameRepository interface {
	Create(game *model.Game) error
	FindByIDWithQuestions(id uint) (*model.Game, error)
	FindAllWithQuestionCount() ([]GameWithQuestionCount, error)
	// FindByQuestionID returns every game containing the question, with the
	// game's full question set preloaded for completion counting.
	FindByQuestionID(questionID uint) ([]model.Game, error)
}

type GameWithQuestionCount struct {
	model.Game
	QuestionCount int
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(game *model.Game) error {
	// Create with associations also creates the questions and their options.
	return r.db.Create(game).Error
}

func (r *gameRepository) FindByIDWithQuestions(id uint) (*model.Game, error) {
	var game model.Game
	err := r.db.Preload("Questions.Options").First(&game, id).Error
	return &game, err
}

func (r *gameRepository) FindAllWithQuestionCount() ([]GameWithQuestionCount, error) {
	var results []GameWithQuestionCount
	err := r.db.Model(&model.Game{}).
		Select("games.*, (SELECT COUNT(*) FROM game_questions WHERE game_questions.game_id = games.id) as question_count").
		Where("games.deleted_at IS NULL").
		Order("games.id ASC").
		Scan(&results).Error
	return results, err
}

func (r *gameRepository) FindByQuestionID(questionID uint) ([]model.Game, error) {
	var games []model.Game
	err := r.db.
		Joins("JOIN game_questions ON game_questions.game_id = games.id").
		Where("game_questions.question_id = ?", questionID).
		Preload("Questions").
		Find(&games).Error
	return games, err
}
