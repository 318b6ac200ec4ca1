package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	MediaTypeVideo = "video"
	MediaTypePDF   = "pdf"
)

// KnowledgeTrail is a study resource (a video or a PDF) assigned by a teacher.
// File upload and delivery live outside this service; only the metadata is
// kept here, mainly as input to the statistics counters.
type KnowledgeTrail struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description,omitempty"`
	MediaType    string         `json:"media_type" gorm:"not null;index"` // "video" or "pdf"
	MediaURL     *string        `json:"media_url,omitempty"`
	AssignedByID *uint          `json:"assigned_by_id,omitempty" gorm:"index"`
	IsWatched    bool           `json:"is_watched" gorm:"not null;default:false"`
	IsPublic     bool           `json:"is_public" gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
