package model

import "time"

// Certificate records that a certificate was issued to a student. PDF
// rendering and file storage are handled by an external collaborator; the
// reference code identifies the document there.
type Certificate struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID uint      `json:"student_id" gorm:"not null;index"`
	Reference string    `json:"reference" gorm:"not null;uniqueIndex"`
	IssuedAt  time.Time `json:"issued_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
