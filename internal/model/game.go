package model

import (
	"time"

	"gorm.io/gorm"
)

type Game struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Title         string         `json:"title" gorm:"not null;uniqueIndex"`
	BadgesAwarded string         `json:"badges_awarded,omitempty"`
	Questions     []Question     `json:"questions,omitempty" gorm:"many2many:game_questions;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// PlayedGame records the latest full pass a student made over a game. One row
// per (student, game); replays overwrite score, completed and played_at.
type PlayedGame struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_played_games_student_game"`
	GameID    uint      `json:"game_id" gorm:"not null;uniqueIndex:idx_played_games_student_game"`
	Game      Game      `json:"game,omitempty" gorm:"foreignKey:GameID"`
	Score     int       `json:"score" gorm:"not null"` // percentage, 0-100
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	PlayedAt  time.Time `json:"played_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
