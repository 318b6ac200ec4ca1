package repository

import (
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayedGameRepository interface {
	// Upsert creates the (student, game) row or overwrites score, completed
	// and played_at on the existing one.
	Upsert(played *model.PlayedGame) error
	FindByStudent(studentID uint) ([]model.PlayedGame, error)
	CountByStudent(studentID uint) (int64, error)
	CountByStudentSince(studentID uint, since time.Time) (int64, error)
	Leaderboard() ([]LeaderboardRow, error)
}

// LeaderboardRow is the per-student aggregate the leaderboard is built from.
type LeaderboardRow struct {
	StudentID    uint
	FirstName    string
	LastName     string
	Avatar       *string
	TotalScore   int
	Medals       int
	LastActivity time.Time
}

type playedGameRepository struct {
	db *gorm.DB
}

func NewPlayedGameRepository(db *gorm.DB) PlayedGameRepository {
	return &playedGameRepository{db: db}
}

func (r *playedGameRepository) Upsert(played *model.PlayedGame) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "completed", "played_at", "updated_at"}),
	}).Create(played).Error
}

func (r *playedGameRepository) FindByStudent(studentID uint) ([]model.PlayedGame, error) {
	var played []model.PlayedGame
	err := r.db.Where("student_id = ?", studentID).Order("played_at DESC").Find(&played).Error
	return played, err
}

func (r *playedGameRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.PlayedGame{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

func (r *playedGameRepository) CountByStudentSince(studentID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.PlayedGame{}).
		Where("student_id = ? AND played_at > ?", studentID, since).
		Count(&count).Error
	return count, err
}

func (r *playedGameRepository) Leaderboard() ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.Table("played_games").
		Select(`played_games.student_id,
			users.first_name,
			users.last_name,
			users.avatar,
			SUM(played_games.score) AS total_score,
			COALESCE(MAX(student_profiles.medals), 0) AS medals,
			MAX(played_games.played_at) AS last_activity`).
		Joins("JOIN users ON users.id = played_games.student_id").
		Joins("LEFT JOIN student_profiles ON student_profiles.student_id = played_games.student_id").
		Group("played_games.student_id, users.first_name, users.last_name, users.avatar").
		Order("total_score DESC, played_games.student_id ASC").
		Scan(&rows).Error
	return rows, err
}
