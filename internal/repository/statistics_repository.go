package repository

import (
	"errors"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
)

// StatisticsRepository is the only code that knows the snapshot is a single
// row; callers get an explicit handle and hand it back via Save.
type StatisticsRepository interface {
	// GetOrCreate returns the global snapshot, creating it with zero counts
	// on first use.
	GetOrCreate() (*model.Statistics, error)
	Save(stats *model.Statistics) error
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) GetOrCreate() (*model.Statistics, error) {
	var stats model.Statistics
	err := r.db.Order("id ASC").First(&stats).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	now := time.Now()
	stats = model.Statistics{LastUpdated: now, LastCertificateCheck: now}
	if err := r.db.Create(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing model.Statistics
			if findErr := r.db.Order("id ASC").First(&existing).Error; findErr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &stats, nil
}

func (r *statisticsRepository) Save(stats *model.Statistics) error {
	return r.db.Save(stats).Error
}
