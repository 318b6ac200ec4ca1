package dto

import "time"

// AnswerSubmissionDTO is the request body for POST /answers. Exactly one of
// SelectedOptionID or TypedAnswer is expected depending on the question kind;
// a missing or malformed value is treated as a wrong answer, not an error.
type AnswerSubmissionDTO struct {
	QuestionID       uint    `json:"question_id" binding:"required"`
	SelectedOptionID *uint   `json:"selected_option_id"`
	TypedAnswer      *string `json:"typed_answer"`
}

// CompletedGameDTO reports a game the submission just fully completed.
type CompletedGameDTO struct {
	GameID       uint   `json:"game_id"`
	GameTitle    string `json:"game_title"`
	Score        int    `json:"score"` // percentage, 0-100
	MedalAwarded bool   `json:"medal_awarded"`
}

// AnswerResultDTO is the response for a submitted answer.
type AnswerResultDTO struct {
	AnswerID       uint               `json:"answer_id"`
	QuestionID     uint               `json:"question_id"`
	IsCorrect      bool               `json:"is_correct"`
	AwardedPoints  int                `json:"awarded_points"`
	TotalPoints    int                `json:"total_points"`
	CompletedGames []CompletedGameDTO `json:"completed_games,omitempty"`
	SubmittedAt    time.Time          `json:"submitted_at"`
}
