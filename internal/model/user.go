package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	FirstName   string          `json:"first_name" gorm:"not null"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email" gorm:"not null;uniqueIndex"`
	Password    string          `json:"-" gorm:"not null"`
	Avatar      *string         `json:"avatar,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Role        string          `json:"role" gorm:"not null;index"` // "student", "teacher", "admin"
	Profile     *StudentProfile `json:"profile,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// StudentProfile is the per-student score ledger. Points and medals only ever
// go up through the scoring pipeline; both are incremented at the SQL level.
type StudentProfile struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	StudentID           uint      `json:"student_id" gorm:"not null;uniqueIndex"`
	Points              int       `json:"points" gorm:"not null;default:0"`
	Medals              int       `json:"medals" gorm:"not null;default:0"`
	Level               int       `json:"level" gorm:"not null;default:1"`
	ActivitiesCompleted int       `json:"activities_completed" gorm:"not null;default:0"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
