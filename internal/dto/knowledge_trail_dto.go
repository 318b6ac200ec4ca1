package dto

import "time"

// KnowledgeTrailCreateDTO is the request body for assigning a study resource.
type KnowledgeTrailCreateDTO struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	MediaType   string  `json:"media_type" binding:"required,oneof=video pdf"`
	MediaURL    *string `json:"media_url"`
	IsPublic    *bool   `json:"is_public"`
}

type KnowledgeTrailResponseDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	MediaType    string    `json:"media_type"`
	MediaURL     *string   `json:"media_url,omitempty"`
	AssignedByID *uint     `json:"assigned_by_id,omitempty"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
}
