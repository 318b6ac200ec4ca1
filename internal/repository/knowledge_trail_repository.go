package repository

import (
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"gorm.io/gorm"
)

type KnowledgeTrailRepository interface {
	Create(trail *model.KnowledgeTrail) error
	FindAll() ([]model.KnowledgeTrail, error)
	CountByMediaType(mediaType string) (int64, error)
}

type knowledgeTrailRepository struct {
	db *gorm.DB
}

func NewKnowledgeTrailRepository(db *gorm.DB) KnowledgeTrailRepository {
	return &knowledgeTrailRepository{db: db}
}

func (r *knowledgeTrailRepository) Create(trail *model.KnowledgeTrail) error {
	return r.db.Create(trail).Error
}

func (r *knowledgeTrailRepository) FindAll() ([]model.KnowledgeTrail, error) {
	var trails []model.KnowledgeTrail
	err := r.db.Order("created_at DESC").Find(&trails).Error
	return trails, err
}

func (r *knowledgeTrailRepository) CountByMediaType(mediaType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.KnowledgeTrail{}).Where("media_type = ?", mediaType).Count(&count).Error
	return count, err
}
