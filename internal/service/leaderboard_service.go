package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	leaderboardCacheKey = "avagapp:leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardService is the read-side projection over PlayedGame rows.
// Rankings are recomputed on every call (modulo a short-lived cache);
// no stored rank is authoritative.
type LeaderboardService interface {
	Rank(ctx context.Context) ([]dto.LeaderboardEntryDTO, error)
	Dashboard(ctx context.Context, studentID uint) (*dto.DashboardDTO, error)
}

type leaderboardService struct {
	repos *repository.Repositories
	cache *redis.Client // optional
}

func NewLeaderboardService(repos *repository.Repositories, cache *redis.Client) LeaderboardService {
	return &leaderboardService{repos: repos, cache: cache}
}

func (s *leaderboardService) Rank(ctx context.Context) ([]dto.LeaderboardEntryDTO, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	rows, err := s.repos.PlayedGames.Leaderboard()
	if err != nil {
		log.Error().Err(err).Msg("Rank: leaderboard aggregation failed")
		return nil, fmt.Errorf("building leaderboard: %w", err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for i, row := range rows {
		lastActivity := row.LastActivity
		entries = append(entries, dto.LeaderboardEntryDTO{
			Rank:         i + 1,
			StudentID:    row.StudentID,
			Name:         row.FirstName + " " + row.LastName,
			Avatar:       row.Avatar,
			TotalScore:   row.TotalScore,
			Medals:       row.Medals,
			LastActivity: &lastActivity,
		})
	}

	s.toCache(ctx, entries)
	return entries, nil
}

func (s *leaderboardService) Dashboard(ctx context.Context, studentID uint) (*dto.DashboardDTO, error) {
	user, err := s.repos.Users.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user %d: %w", studentID, err)
	}
	profile, err := s.repos.Profiles.GetOrCreate(studentID)
	if err != nil {
		return nil, fmt.Errorf("loading profile for student %d: %w", studentID, err)
	}

	entries, err := s.Rank(ctx)
	if err != nil {
		return nil, err
	}

	board := dto.DashboardDTO{
		User: dto.UserResponseDTO{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Avatar:    user.Avatar,
			Role:      user.Role,
		},
		Points:              profile.Points,
		Medals:              profile.Medals,
		Level:               profile.Level,
		ActivitiesCompleted: profile.ActivitiesCompleted,
	}

	for _, entry := range entries {
		if entry.StudentID == studentID {
			rank := entry.Rank
			board.Rank = &rank
			board.TotalScore = entry.TotalScore
			board.LastActivity = entry.LastActivity
			break
		}
	}
	if len(entries) > 3 {
		entries = entries[:3]
	}
	board.Classification = entries

	return &board, nil
}

func (s *leaderboardService) fromCache(ctx context.Context) ([]dto.LeaderboardEntryDTO, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, leaderboardCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("Rank: leaderboard cache read failed")
		}
		return nil, false
	}
	var entries []dto.LeaderboardEntryDTO
	if err := json.Unmarshal(payload, &entries); err != nil {
		log.Warn().Err(err).Msg("Rank: dropping undecodable leaderboard cache entry")
		return nil, false
	}
	return entries, true
}

func (s *leaderboardService) toCache(ctx context.Context, entries []dto.LeaderboardEntryDTO) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("Rank: leaderboard cache write failed")
	}
}
