package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// maxSubmitAttempts bounds retries when the transactional pipeline collides
// with a concurrent submission for the same student.
const maxSubmitAttempts = 3

// SubmissionService runs the answer pipeline: evaluate the submission,
// persist the answer row, apply points to the ledger, then check every game
// containing the question for completion. All writes happen inside one
// transaction per attempt so a failure rolls the whole submission back.
type SubmissionService interface {
	SubmitAnswer(ctx context.Context, studentID uint, req dto.AnswerSubmissionDTO) (*dto.AnswerResultDTO, error)
}

type submissionService struct {
	repos *repository.Repositories
	txm   repository.TxManager
	cache *redis.Client // optional; leaderboard invalidation only
	now   func() time.Time
}

func NewSubmissionService(repos *repository.Repositories, txm repository.TxManager, cache *redis.Client) SubmissionService {
	return &submissionService{repos: repos, txm: txm, cache: cache, now: time.Now}
}

// NewSubmissionServiceWithClock is for tests that need deterministic timestamps.
func NewSubmissionServiceWithClock(repos *repository.Repositories, txm repository.TxManager, now func() time.Time) SubmissionService {
	return &submissionService{repos: repos, txm: txm, now: now}
}

func (s *submissionService) SubmitAnswer(ctx context.Context, studentID uint, req dto.AnswerSubmissionDTO) (*dto.AnswerResultDTO, error) {
	// Referential checks happen before the transaction starts; a submission
	// addressed at a missing student or question is a client error.
	if _, err := s.repos.Users.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading student %d: %w", studentID, err)
	}
	question, err := s.repos.Questions.FindByIDWithOptions(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("loading question %d: %w", req.QuestionID, err)
	}

	isCorrect, awardedPoints := Evaluate(question, req)

	var result *dto.AnswerResultDTO
	for attempt := 1; attempt <= maxSubmitAttempts; attempt++ {
		result, err = s.submitOnce(studentID, question, req, isCorrect, awardedPoints)
		if err == nil {
			break
		}
		if !isRetryableConflict(err) {
			return nil, err
		}
		log.Warn().Err(err).
			Uint("studentID", studentID).
			Uint("questionID", question.ID).
			Int("attempt", attempt).
			Msg("SubmitAnswer: transaction conflict, retrying")
	}
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("SubmitAnswer: retries exhausted")
		return nil, ErrConflict
	}

	if len(result.CompletedGames) > 0 {
		s.invalidateLeaderboard(ctx)
	}
	return result, nil
}

// submitOnce is one transactional pass of the pipeline.
func (s *submissionService) submitOnce(studentID uint, question *model.Question, req dto.AnswerSubmissionDTO, isCorrect bool, awardedPoints int) (*dto.AnswerResultDTO, error) {
	var result dto.AnswerResultDTO

	err := s.txm.Transaction(func(r *repository.Repositories) error {
		// Lock the student's ledger row first. Concurrent submissions for
		// the same student queue up here, so by the time the completion
		// count below runs, every earlier submission's answer row is
		// committed and visible.
		profile, err := r.Profiles.GetOrCreateForUpdate(studentID)
		if err != nil {
			return fmt.Errorf("loading ledger for student %d: %w", studentID, err)
		}

		submittedAt := s.now()
		answer := model.StudentAnswer{
			StudentID:        studentID,
			QuestionID:       question.ID,
			SelectedOptionID: req.SelectedOptionID,
			TypedAnswer:      req.TypedAnswer,
			IsCorrect:        isCorrect,
			CreatedAt:        submittedAt,
		}
		if err := r.Answers.Create(&answer); err != nil {
			return fmt.Errorf("persisting answer: %w", err)
		}

		if awardedPoints > 0 {
			newTotal := profile.Points + awardedPoints
			if err := r.Profiles.AddPoints(studentID, awardedPoints); err != nil {
				return fmt.Errorf("applying points: %w", err)
			}
			if level := LevelForPoints(newTotal); level != profile.Level {
				if err := r.Profiles.SetLevel(studentID, level); err != nil {
					return fmt.Errorf("updating level: %w", err)
				}
			}
		}

		completed, err := s.trackCompletion(r, studentID, question.ID, submittedAt)
		if err != nil {
			return err
		}

		current, err := r.Profiles.FindByStudentID(studentID)
		if err != nil {
			return fmt.Errorf("reloading ledger: %w", err)
		}

		result = dto.AnswerResultDTO{
			AnswerID:       answer.ID,
			QuestionID:     question.ID,
			IsCorrect:      isCorrect,
			AwardedPoints:  awardedPoints,
			TotalPoints:    current.Points,
			CompletedGames: completed,
			SubmittedAt:    submittedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// trackCompletion checks each game containing the question. A game counts as
// complete once the student has answered every distinct question in it; the
// correctness ratio then drives the PlayedGame upsert and the medal check.
// The caller must hold the student's ledger row lock: the answered-vs-total
// count is only safe because same-student transactions are serialized on it.
func (s *submissionService) trackCompletion(r *repository.Repositories, studentID, questionID uint, submittedAt time.Time) ([]dto.CompletedGameDTO, error) {
	games, err := r.Games.FindByQuestionID(questionID)
	if err != nil {
		return nil, fmt.Errorf("finding games for question %d: %w", questionID, err)
	}

	var completed []dto.CompletedGameDTO
	for _, game := range games {
		total := len(game.Questions)
		if total == 0 {
			// A game containing this question cannot be empty; bail loudly
			// instead of dividing by zero further down.
			return nil, fmt.Errorf("game %d contains question %d but reports no questions", game.ID, questionID)
		}
		questionIDs := make([]uint, 0, total)
		for _, q := range game.Questions {
			questionIDs = append(questionIDs, q.ID)
		}

		answers, err := r.Answers.FindByStudentAndQuestions(studentID, questionIDs)
		if err != nil {
			return nil, fmt.Errorf("loading answers for game %d: %w", game.ID, err)
		}

		// Latest answer per distinct question; re-answering before finishing
		// must not inflate the answered count, and replays should be judged
		// on the freshest pass.
		latest := make(map[uint]bool, total)
		for _, ans := range answers {
			latest[ans.QuestionID] = ans.IsCorrect
		}
		if len(latest) < total {
			continue
		}

		correct := 0
		for _, ok := range latest {
			if ok {
				correct++
			}
		}
		percentage := correct * 100 / total

		played := model.PlayedGame{
			StudentID: studentID,
			GameID:    game.ID,
			Score:     percentage,
			Completed: true,
			PlayedAt:  submittedAt,
		}
		if err := r.PlayedGames.Upsert(&played); err != nil {
			return nil, fmt.Errorf("recording played game %d: %w", game.ID, err)
		}
		if err := r.Profiles.IncrementActivities(studentID); err != nil {
			return nil, fmt.Errorf("counting activity: %w", err)
		}

		medal := percentage >= 80
		if medal {
			if err := r.Profiles.AddMedal(studentID); err != nil {
				return nil, fmt.Errorf("awarding medal: %w", err)
			}
		}

		completed = append(completed, dto.CompletedGameDTO{
			GameID:       game.ID,
			GameTitle:    game.Title,
			Score:        percentage,
			MedalAwarded: medal,
		})
	}
	return completed, nil
}

func (s *submissionService) invalidateLeaderboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, leaderboardCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to invalidate leaderboard cache")
	}
}

// isRetryableConflict reports whether an error looks like a transient
// concurrency failure worth retrying with fresh reads.
func isRetryableConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") || strings.Contains(msg, "could not serialize")
}
