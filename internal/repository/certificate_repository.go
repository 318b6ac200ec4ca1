package repository

import (
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(cert *model.Certificate) error
	CountAll() (int64, error)
	CountSince(since time.Time) (int64, error)
	CountByStudent(studentID uint) (int64, error)
	CountByStudentSince(studentID uint, since time.Time) (int64, error)
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(cert *model.Certificate) error {
	return r.db.Create(cert).Error
}

func (r *certificateRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Certificate{}).Count(&count).Error
	return count, err
}

func (r *certificateRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Certificate{}).Where("created_at > ?", since).Count(&count).Error
	return count, err
}

func (r *certificateRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Certificate{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

func (r *certificateRepository) CountByStudentSince(studentID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Certificate{}).
		Where("student_id = ? AND created_at > ?", studentID, since).
		Count(&count).Error
	return count, err
}
