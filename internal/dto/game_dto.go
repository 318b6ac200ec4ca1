package dto

import "time"

// OptionCreateDTO is used within QuestionCreateDTO when creating a game.
type OptionCreateDTO struct {
	OptionText string `json:"option_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	Order      *int   `json:"order"`
}

// QuestionCreateDTO is used within GameCreateDTO for game creation.
type QuestionCreateDTO struct {
	QuestionText  string            `json:"question_text" binding:"required"`
	QuestionType  string            `json:"question_type" binding:"required,oneof=quiz fill_in_the_blank drag_and_drop match_the_column word_hunt"`
	Points        int               `json:"points" binding:"required,gt=0"`
	CorrectAnswer *string           `json:"correct_answer"`
	Options       []OptionCreateDTO `json:"options" binding:"dive"`
}

// GameCreateDTO is for teachers/admins to create a game with all its questions.
type GameCreateDTO struct {
	Title         string              `json:"title" binding:"required"`
	BadgesAwarded string              `json:"badges_awarded"`
	Questions     []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type OptionResponseDTO struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
	Order      *int   `json:"order,omitempty"`
}

type QuestionResponseDTO struct {
	ID            uint                `json:"id"`
	QuestionText  string              `json:"question_text"`
	QuestionType  string              `json:"question_type"`
	Points        int                 `json:"points"`
	CorrectAnswer *string             `json:"correct_answer,omitempty"`
	Options       []OptionResponseDTO `json:"options,omitempty"`
}

type GameResponseDTO struct {
	ID            uint                  `json:"id"`
	Title         string                `json:"title"`
	BadgesAwarded string                `json:"badges_awarded,omitempty"`
	Questions     []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// GameSummaryDTO is used for listing games.
type GameSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	BadgesAwarded string    `json:"badges_awarded,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
