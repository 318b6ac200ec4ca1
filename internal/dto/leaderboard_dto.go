package dto

import "time"

// LeaderboardEntryDTO is one row of the ranked leaderboard. Rank is the
// 1-based position in the sorted result; nothing persisted is authoritative.
type LeaderboardEntryDTO struct {
	Rank         int        `json:"rank"`
	StudentID    uint       `json:"student_id"`
	Name         string     `json:"name"`
	Avatar       *string    `json:"avatar,omitempty"`
	TotalScore   int        `json:"total_score"`
	Medals       int        `json:"medals"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// DashboardDTO is the student home-screen summary.
type DashboardDTO struct {
	User                UserResponseDTO       `json:"user"`
	Points              int                   `json:"points"`
	Medals              int                   `json:"medals"`
	Level               int                   `json:"level"`
	ActivitiesCompleted int                   `json:"activities_completed"`
	Rank                *int                  `json:"rank,omitempty"`
	TotalScore          int                   `json:"total_score"`
	LastActivity        *time.Time            `json:"last_activity,omitempty"`
	Classification      []LeaderboardEntryDTO `json:"classification"` // top 3
}
