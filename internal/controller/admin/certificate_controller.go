package admin

import (
	"errors"
	"net/http"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/controller/middleware"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CertificateController struct {
	certificateService service.CertificateService
	userRepo           repository.UserRepository
}

func NewCertificateController(certificateService service.CertificateService, userRepo repository.UserRepository) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
		userRepo:           userRepo,
	}
}

// IssueCertificate godoc
// @Summary Issue a completion certificate to a student
// @Tags Certificates
// @Accept json
// @Produce json
// @Param body body dto.CertificateIssueDTO true "Target student"
// @Success 201 {object} dto.CertificateResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/certificates [post]
func (c *CertificateController) IssueCertificate(ctx *gin.Context) {
	var req dto.CertificateIssueDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	issuer, err := c.userRepo.FindByID(middleware.UserIDFrom(ctx))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unknown user"})
		return
	}

	cert, err := c.certificateService.Issue(issuer, req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("studentID", req.StudentID).Msg("IssueCertificate: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to issue certificate"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.CertificateResponseDTO{
		ID:        cert.ID,
		StudentID: cert.StudentID,
		Reference: cert.Reference,
		IssuedAt:  cert.IssuedAt,
	})
}
