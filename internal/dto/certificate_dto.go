package dto

import "time"

type CertificateIssueDTO struct {
	StudentID uint `json:"student_id" binding:"required"`
}

type CertificateResponseDTO struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"student_id"`
	Reference string    `json:"reference"`
	IssuedAt  time.Time `json:"issued_at"`
}
