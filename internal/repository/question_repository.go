package repository

import (
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByIDWithOptions(id uint) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIDWithOptions(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Options").First(&question, id).Error
	return &question, err
}
