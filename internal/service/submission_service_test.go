package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository/memory"
)

// testClock hands out strictly increasing timestamps so answer ordering is
// deterministic.
type testClock struct {
	current time.Time
}

func newTestClock() *testClock {
	return &testClock{current: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}

type submissionFixture struct {
	store   *memory.Store
	service SubmissionService
	student *model.User
	game    *model.Game
}

// newSubmissionFixture seeds one student and one game whose questions are
// all single-choice worth 10 points; the first option of each is correct.
func newSubmissionFixture(t *testing.T, questionCount int) *submissionFixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()

	student := &model.User{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com", Role: model.RoleStudent}
	if err := repos.Users.Create(student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}

	questions := make([]model.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		questions = append(questions, model.Question{
			QuestionText: "question",
			QuestionType: model.QuestionTypeQuiz,
			Points:       10,
			Options: []model.Option{
				{OptionText: "right", IsCorrect: true},
				{OptionText: "wrong", IsCorrect: false},
			},
		})
	}
	game := &model.Game{Title: "Math Run", Questions: questions}
	if err := repos.Games.Create(game); err != nil {
		t.Fatalf("seeding game: %v", err)
	}

	clock := newTestClock()
	return &submissionFixture{
		store:   store,
		service: NewSubmissionServiceWithClock(repos, store.TxManager(), clock.Now),
		student: student,
		game:    game,
	}
}

// answer submits the option at the given index of one question.
func (f *submissionFixture) answer(t *testing.T, questionIdx, optionIdx int) *dto.AnswerResultDTO {
	t.Helper()
	question := f.game.Questions[questionIdx]
	result, err := f.service.SubmitAnswer(context.Background(), f.student.ID, dto.AnswerSubmissionDTO{
		QuestionID:       question.ID,
		SelectedOptionID: &question.Options[optionIdx].ID,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer(question %d): %v", question.ID, err)
	}
	return result
}

func (f *submissionFixture) profile(t *testing.T) *model.StudentProfile {
	t.Helper()
	profile, err := f.store.Repositories().Profiles.FindByStudentID(f.student.ID)
	if err != nil {
		t.Fatalf("loading profile: %v", err)
	}
	return profile
}

func TestSubmitAnswerUnknownStudent(t *testing.T) {
	f := newSubmissionFixture(t, 1)
	_, err := f.service.SubmitAnswer(context.Background(), 999, dto.AnswerSubmissionDTO{QuestionID: f.game.Questions[0].ID})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	f := newSubmissionFixture(t, 1)
	_, err := f.service.SubmitAnswer(context.Background(), f.student.ID, dto.AnswerSubmissionDTO{QuestionID: 999})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestSubmitAnswerAwardsPointsBeforeCompletion(t *testing.T) {
	f := newSubmissionFixture(t, 2)

	result := f.answer(t, 0, 0) // correct

	if !result.IsCorrect || result.AwardedPoints != 10 {
		t.Fatalf("result = (%v, %d), want (true, 10)", result.IsCorrect, result.AwardedPoints)
	}
	if result.TotalPoints != 10 {
		t.Fatalf("TotalPoints = %d, want 10", result.TotalPoints)
	}
	if len(result.CompletedGames) != 0 {
		t.Fatalf("game completed after 1 of 2 questions: %+v", result.CompletedGames)
	}
	if count, _ := f.store.Repositories().PlayedGames.CountByStudent(f.student.ID); count != 0 {
		t.Fatalf("played games = %d, want 0", count)
	}
}

func TestSubmitAnswerWrongAnswerAwardsNothing(t *testing.T) {
	f := newSubmissionFixture(t, 2)

	result := f.answer(t, 0, 1) // wrong

	if result.IsCorrect || result.AwardedPoints != 0 {
		t.Fatalf("result = (%v, %d), want (false, 0)", result.IsCorrect, result.AwardedPoints)
	}
	if result.TotalPoints != 0 {
		t.Fatalf("TotalPoints = %d, want 0", result.TotalPoints)
	}
}

func TestSubmitAnswerCompletesGamePerfectScore(t *testing.T) {
	f := newSubmissionFixture(t, 2)

	f.answer(t, 0, 0)
	result := f.answer(t, 1, 0)

	if len(result.CompletedGames) != 1 {
		t.Fatalf("CompletedGames = %+v, want exactly one", result.CompletedGames)
	}
	done := result.CompletedGames[0]
	if done.GameID != f.game.ID || done.Score != 100 || !done.MedalAwarded {
		t.Fatalf("completion = %+v, want game %d at 100%% with medal", done, f.game.ID)
	}
	if result.TotalPoints != 20 {
		t.Fatalf("TotalPoints = %d, want 20", result.TotalPoints)
	}

	profile := f.profile(t)
	if profile.Points != 20 || profile.Medals != 1 || profile.ActivitiesCompleted != 1 {
		t.Fatalf("profile = {points:%d medals:%d activities:%d}, want {20 1 1}", profile.Points, profile.Medals, profile.ActivitiesCompleted)
	}
}

func TestSubmitAnswerHalfScoreNoMedal(t *testing.T) {
	f := newSubmissionFixture(t, 2)

	f.answer(t, 0, 1) // wrong
	result := f.answer(t, 1, 0)

	if len(result.CompletedGames) != 1 {
		t.Fatalf("CompletedGames = %+v, want exactly one", result.CompletedGames)
	}
	done := result.CompletedGames[0]
	if done.Score != 50 || done.MedalAwarded {
		t.Fatalf("completion = %+v, want 50%% and no medal", done)
	}

	profile := f.profile(t)
	if profile.Points != 10 || profile.Medals != 0 {
		t.Fatalf("profile = {points:%d medals:%d}, want {10 0}", profile.Points, profile.Medals)
	}
}

func TestMedalThresholdIsEightyPercent(t *testing.T) {
	// 4 of 5 correct is exactly 80 and earns the medal; 3 of 5 does not.
	t.Run("four of five", func(t *testing.T) {
		f := newSubmissionFixture(t, 5)
		f.answer(t, 0, 1) // wrong
		f.answer(t, 1, 0)
		f.answer(t, 2, 0)
		f.answer(t, 3, 0)
		result := f.answer(t, 4, 0)
		if done := result.CompletedGames[0]; done.Score != 80 || !done.MedalAwarded {
			t.Fatalf("completion = %+v, want exactly 80%% with medal", done)
		}
	})
	t.Run("three of five", func(t *testing.T) {
		f := newSubmissionFixture(t, 5)
		f.answer(t, 0, 1)
		f.answer(t, 1, 1)
		f.answer(t, 2, 0)
		f.answer(t, 3, 0)
		result := f.answer(t, 4, 0)
		if done := result.CompletedGames[0]; done.Score != 60 || done.MedalAwarded {
			t.Fatalf("completion = %+v, want 60%% without medal", done)
		}
	})
}

func TestAllWrongAnswersStillCompleteGame(t *testing.T) {
	// The zero-point path skips the points update, so completion tracking
	// must not depend on it; the ledger row is locked up front either way.
	f := newSubmissionFixture(t, 2)

	f.answer(t, 0, 1)
	result := f.answer(t, 1, 1)

	if len(result.CompletedGames) != 1 {
		t.Fatalf("CompletedGames = %+v, want exactly one", result.CompletedGames)
	}
	if done := result.CompletedGames[0]; done.Score != 0 || done.MedalAwarded {
		t.Fatalf("completion = %+v, want 0%% without medal", done)
	}

	played, err := f.store.Repositories().PlayedGames.FindByStudent(f.student.ID)
	if err != nil {
		t.Fatalf("loading played games: %v", err)
	}
	if len(played) != 1 || played[0].Score != 0 || !played[0].Completed {
		t.Fatalf("played = %+v, want one completed row at score 0", played)
	}

	profile := f.profile(t)
	if profile.Points != 0 || profile.Medals != 0 || profile.ActivitiesCompleted != 1 {
		t.Fatalf("profile = {points:%d medals:%d activities:%d}, want {0 0 1}", profile.Points, profile.Medals, profile.ActivitiesCompleted)
	}
}

func TestReansweringSameQuestionDoesNotComplete(t *testing.T) {
	f := newSubmissionFixture(t, 2)

	f.answer(t, 0, 0)
	result := f.answer(t, 0, 0) // same question again

	if len(result.CompletedGames) != 0 {
		t.Fatalf("two answers to one question completed a 2-question game: %+v", result.CompletedGames)
	}
	// Points still accrue per answer row.
	if result.TotalPoints != 20 {
		t.Fatalf("TotalPoints = %d, want 20", result.TotalPoints)
	}
}

func TestReplayOverwritesPlayedGame(t *testing.T) {
	f := newSubmissionFixture(t, 2)

	// First pass: 50%.
	f.answer(t, 0, 1)
	f.answer(t, 1, 0)

	// Replay the missed question correctly: latest answers are now all
	// correct, so the stored run is re-judged at 100%.
	result := f.answer(t, 0, 0)

	if len(result.CompletedGames) != 1 {
		t.Fatalf("CompletedGames = %+v, want exactly one", result.CompletedGames)
	}
	if done := result.CompletedGames[0]; done.Score != 100 || !done.MedalAwarded {
		t.Fatalf("completion = %+v, want 100%% with medal", done)
	}

	played, err := f.store.Repositories().PlayedGames.FindByStudent(f.student.ID)
	if err != nil {
		t.Fatalf("loading played games: %v", err)
	}
	if len(played) != 1 {
		t.Fatalf("played rows = %d, want 1 (replays overwrite)", len(played))
	}
	if played[0].Score != 100 {
		t.Fatalf("stored score = %d, want 100", played[0].Score)
	}

	// Each qualifying completion pass counts as an activity and a medal check.
	profile := f.profile(t)
	if profile.ActivitiesCompleted != 2 {
		t.Fatalf("ActivitiesCompleted = %d, want 2", profile.ActivitiesCompleted)
	}
	if profile.Medals != 1 {
		t.Fatalf("Medals = %d, want 1 (first pass scored below the threshold)", profile.Medals)
	}
}

func TestPointsNeverDecrease(t *testing.T) {
	f := newSubmissionFixture(t, 2)

	previous := 0
	moves := [][2]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}, {0, 0}}
	for _, move := range moves {
		result := f.answer(t, move[0], move[1])
		if result.TotalPoints < previous {
			t.Fatalf("TotalPoints dropped from %d to %d", previous, result.TotalPoints)
		}
		previous = result.TotalPoints
	}
}

func TestLevelFollowsAccumulatedPoints(t *testing.T) {
	f := newSubmissionFixture(t, 12)

	// 12 correct answers at 10 points each crosses the 50 and 120 bounds.
	for i := 0; i < 12; i++ {
		f.answer(t, i, 0)
	}

	profile := f.profile(t)
	if profile.Points != 120 {
		t.Fatalf("Points = %d, want 120", profile.Points)
	}
	if want := LevelForPoints(120); profile.Level != want {
		t.Fatalf("Level = %d, want %d", profile.Level, want)
	}
}
