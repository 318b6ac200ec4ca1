package service

import (
	"fmt"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// KnowledgeTrailService manages the study-resource catalog. The media files
// themselves are hosted elsewhere; only metadata passes through here.
type KnowledgeTrailService interface {
	Create(creator *model.User, req dto.KnowledgeTrailCreateDTO) (*dto.KnowledgeTrailResponseDTO, error)
	List() ([]dto.KnowledgeTrailResponseDTO, error)
}

type knowledgeTrailService struct {
	trailRepo repository.KnowledgeTrailRepository
}

func NewKnowledgeTrailService(trailRepo repository.KnowledgeTrailRepository) KnowledgeTrailService {
	return &knowledgeTrailService{trailRepo: trailRepo}
}

func (s *knowledgeTrailService) Create(creator *model.User, req dto.KnowledgeTrailCreateDTO) (*dto.KnowledgeTrailResponseDTO, error) {
	if creator.Role != model.RoleTeacher && creator.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	trail := model.KnowledgeTrail{
		Title:        req.Title,
		Description:  req.Description,
		MediaType:    req.MediaType,
		MediaURL:     req.MediaURL,
		AssignedByID: &creator.ID,
		IsPublic:     isPublic,
	}
	if err := s.trailRepo.Create(&trail); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Create: failed to store knowledge trail")
		return nil, fmt.Errorf("creating knowledge trail: %w", err)
	}

	var resp dto.KnowledgeTrailResponseDTO
	if err := copier.Copy(&resp, &trail); err != nil {
		return nil, fmt.Errorf("preparing knowledge trail response: %w", err)
	}
	return &resp, nil
}

func (s *knowledgeTrailService) List() ([]dto.KnowledgeTrailResponseDTO, error) {
	trails, err := s.trailRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing knowledge trails: %w", err)
	}
	var resp []dto.KnowledgeTrailResponseDTO
	if err := copier.Copy(&resp, &trails); err != nil {
		return nil, fmt.Errorf("preparing knowledge trail list: %w", err)
	}
	return resp, nil
}
