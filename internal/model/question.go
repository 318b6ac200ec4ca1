package model

import (
	"time"

	"gorm.io/gorm"
)

// Question kinds. The evaluator dispatches on these; adding a kind means
// adding a constant here and a branch to service.Evaluate.
const (
	QuestionTypeQuiz           = "quiz" // single choice
	QuestionTypeFillInTheBlank = "fill_in_the_blank"
	QuestionTypeDragAndDrop    = "drag_and_drop"
	QuestionTypeMatchTheColumn = "match_the_column"
	QuestionTypeWordHunt       = "word_hunt"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  string         `json:"question_type" gorm:"not null;index"`
	Points        int            `json:"points" gorm:"not null"`
	CorrectAnswer *string        `json:"correct_answer,omitempty"` // fill_in_the_blank only
	Options       []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Games         []Game         `json:"-" gorm:"many2many:game_questions;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type Option struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	OptionText string    `json:"option_text" gorm:"not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null;default:false"`
	Order      *int      `json:"order,omitempty" gorm:"column:option_order"` // match_the_column only
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CorrectOptionCount is the expected word_hunt answer for this question.
func (q *Question) CorrectOptionCount() int {
	count := 0
	for _, opt := range q.Options {
		if opt.IsCorrect {
			count++
		}
	}
	return count
}
