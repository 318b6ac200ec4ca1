package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CertificateService records certificate issuance. Rendering the PDF and
// storing the file are done by an external collaborator keyed by the
// certificate reference.
type CertificateService interface {
	Issue(issuer *model.User, studentID uint) (*model.Certificate, error)
}

type certificateService struct {
	userRepo repository.UserRepository
	certRepo repository.CertificateRepository
}

func NewCertificateService(userRepo repository.UserRepository, certRepo repository.CertificateRepository) CertificateService {
	return &certificateService{userRepo: userRepo, certRepo: certRepo}
}

func (s *certificateService) Issue(issuer *model.User, studentID uint) (*model.Certificate, error) {
	if issuer.Role != model.RoleTeacher && issuer.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading student %d: %w", studentID, err)
	}
	if student.Role != model.RoleStudent {
		return nil, ErrUserNotFound
	}

	cert := model.Certificate{
		StudentID: student.ID,
		Reference: uuid.NewString(),
		IssuedAt:  time.Now(),
	}
	if err := s.certRepo.Create(&cert); err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Issue: failed to record certificate")
		return nil, fmt.Errorf("recording certificate: %w", err)
	}
	return &cert, nil
}
