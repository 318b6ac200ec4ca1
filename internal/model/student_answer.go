package model

import "time"

// StudentAnswer is the audit record of one submission. Rows are created once
// and never updated; the resolved correctness travels with the row so the
// completion tracker can recount a game without re-evaluating.
type StudentAnswer struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	StudentID        uint      `json:"student_id" gorm:"not null;index:idx_student_answers_student_question"`
	QuestionID       uint      `json:"question_id" gorm:"not null;index:idx_student_answers_student_question"`
	Question         Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedOptionID *uint     `json:"selected_option_id,omitempty"`
	TypedAnswer      *string   `json:"typed_answer,omitempty" gorm:"type:text"`
	IsCorrect        bool      `json:"is_correct" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}
