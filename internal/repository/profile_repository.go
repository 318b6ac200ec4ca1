package repository

import (
	"errors"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository owns the student score ledger. Points and medals are
// incremented at the SQL level so concurrent submissions for the same student
// never lose an update to a stale read.
type ProfileRepository interface {
	GetOrCreate(studentID uint) (*model.StudentProfile, error)
	// GetOrCreateForUpdate is GetOrCreate with the row read under
	// SELECT ... FOR UPDATE. Within a transaction it serializes every
	// concurrent pipeline touching the same student until commit.
	GetOrCreateForUpdate(studentID uint) (*model.StudentProfile, error)
	FindByStudentID(studentID uint) (*model.StudentProfile, error)
	AddPoints(studentID uint, points int) error
	AddMedal(studentID uint) error
	IncrementActivities(studentID uint) error
	SetLevel(studentID uint, level int) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetOrCreate(studentID uint) (*model.StudentProfile, error) {
	return r.getOrCreate(r.db, studentID)
}

func (r *profileRepository) GetOrCreateForUpdate(studentID uint) (*model.StudentProfile, error) {
	return r.getOrCreate(r.db.Clauses(clause.Locking{Strength: "UPDATE"}), studentID)
}

func (r *profileRepository) getOrCreate(tx *gorm.DB, studentID uint) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := tx.Where("student_id = ?", studentID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	profile = model.StudentProfile{StudentID: studentID, Level: 1}
	if err := r.db.Create(&profile).Error; err != nil {
		// A concurrent request may have created the row first; the unique
		// index on student_id guarantees there is exactly one to fall back to.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.StudentProfile
			if findErr := tx.Where("student_id = ?", studentID).First(&existing).Error; findErr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByStudentID(studentID uint) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.Where("student_id = ?", studentID).First(&profile).Error
	return &profile, err
}

func (r *profileRepository) AddPoints(studentID uint, points int) error {
	return r.db.Model(&model.StudentProfile{}).
		Where("student_id = ?", studentID).
		UpdateColumn("points", gorm.Expr("points + ?", points)).Error
}

func (r *profileRepository) AddMedal(studentID uint) error {
	return r.db.Model(&model.StudentProfile{}).
		Where("student_id = ?", studentID).
		UpdateColumn("medals", gorm.Expr("medals + ?", 1)).Error
}

func (r *profileRepository) IncrementActivities(studentID uint) error {
	return r.db.Model(&model.StudentProfile{}).
		Where("student_id = ?", studentID).
		UpdateColumn("activities_completed", gorm.Expr("activities_completed + ?", 1)).Error
}

func (r *profileRepository) SetLevel(studentID uint, level int) error {
	return r.db.Model(&model.StudentProfile{}).
		Where("student_id = ?", studentID).
		Update("level", level).Error
}
