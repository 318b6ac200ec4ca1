package model

import "time"

// Statistics is the single global snapshot of last-observed counts, used to
// report deltas on each statistics read. Plain count fields are overwritten
// with the current value on every read; CertificatesIssued is a running total
// fed by timestamp-bounded counts of rows newer than LastUpdated.
type Statistics struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	Students             int       `json:"students" gorm:"not null;default:0"`
	Teachers             int       `json:"teachers" gorm:"not null;default:0"`
	KnowledgeTrailVideos int       `json:"knowledge_trail_videos" gorm:"not null;default:0"`
	KnowledgeTrailPDFs   int       `json:"knowledge_trail_pdfs" gorm:"not null;default:0"`
	CertificatesIssued   int       `json:"certificates_issued" gorm:"not null;default:0"`
	StudentPoints        int       `json:"student_points" gorm:"not null;default:0"`
	StudentMedals        int       `json:"student_medals" gorm:"not null;default:0"`
	LastUpdated time.Time `json:"last_updated"`
	// LastCertificateCheck is set at creation and never advanced; the column
	// is retained for schema compatibility with existing deployments.
	LastCertificateCheck time.Time `json:"last_certificate_check"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
