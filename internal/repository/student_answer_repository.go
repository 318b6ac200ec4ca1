package repository

import (
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
)

// StudentAnswerRepository is append-only; answer rows are the audit trail of
// what was submitted and are never updated or deleted by the pipeline.
type StudentAnswerRepository interface {
	Create(answer *model.StudentAnswer) error
	// FindByStudentAndQuestions returns the student's answers to any of the
	// given questions, oldest first.
	FindByStudentAndQuestions(studentID uint, questionIDs []uint) ([]model.StudentAnswer, error)
	CountByStudent(studentID uint) (int64, error)
}

type studentAnswerRepository struct {
	db *gorm.DB
}

func NewStudentAnswerRepository(db *gorm.DB) StudentAnswerRepository {
	return &studentAnswerRepository{db: db}
}

func (r *studentAnswerRepository) Create(answer *model.StudentAnswer) error {
	return r.db.Create(answer).Error
}

func (r *studentAnswerRepository) FindByStudentAndQuestions(studentID uint, questionIDs []uint) ([]model.StudentAnswer, error) {
	var answers []model.StudentAnswer
	err := r.db.
		Where("student_id = ? AND question_id IN ?", studentID, questionIDs).
		Order("created_at ASC, id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *studentAnswerRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.StudentAnswer{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}
