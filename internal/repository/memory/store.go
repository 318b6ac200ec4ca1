// Package memory provides in-memory implementations of the repository
// interfaces. They back the service tests and are handy for local
// experiments; the stores are not safe for concurrent use outside the
// TxManager, which serializes whole pipelines behind one mutex.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"gorm.io/gorm"
)

type playedKey struct {
	studentID uint
	gameID    uint
}

type Store struct {
	mu sync.Mutex

	users    map[uint]*model.User
	profiles map[uint]*model.StudentProfile // keyed by student ID
	games    map[uint]*model.Game
	answers  []*model.StudentAnswer
	played   map[playedKey]*model.PlayedGame
	stats    *model.Statistics
	certs    []*model.Certificate
	trails   []*model.KnowledgeTrail

	nextUserID    uint
	nextProfileID uint
	nextGameID    uint
	nextAnswerID  uint
	nextPlayedID  uint
	nextCertID    uint
	nextTrailID   uint
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]*model.User),
		profiles: make(map[uint]*model.StudentProfile),
		games:    make(map[uint]*model.Game),
		played:   make(map[playedKey]*model.PlayedGame),
	}
}

// Repositories returns a repository set backed by this store.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:           &userRepo{s},
		Profiles:        &profileRepo{s},
		Questions:       &questionRepo{s},
		Games:           &gameRepo{s},
		Answers:         &answerRepo{s},
		PlayedGames:     &playedGameRepo{s},
		Statistics:      &statisticsRepo{s},
		Certificates:    &certificateRepo{s},
		KnowledgeTrails: &trailRepo{s},
	}
}

// TxManager serializes callbacks behind the store mutex. There is no
// rollback; a failing callback leaves its writes applied, which is
// acceptable for the happy-path flows the tests exercise.
func (s *Store) TxManager() repository.TxManager {
	return &txManager{store: s}
}

type txManager struct {
	store *Store
}

func (m *txManager) Transaction(fn func(r *repository.Repositories) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(m.store.Repositories())
}

// --- users ---

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *model.User) error {
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = user
	return nil
}

func (r *userRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return &model.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return &model.User{}, gorm.ErrRecordNotFound
}

func (r *userRepo) CountByRole(role string) (int64, error) {
	var count int64
	for _, user := range r.s.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// --- profiles ---

type profileRepo struct{ s *Store }

func (r *profileRepo) GetOrCreate(studentID uint) (*model.StudentProfile, error) {
	if profile, ok := r.s.profiles[studentID]; ok {
		return profile, nil
	}
	r.s.nextProfileID++
	profile := &model.StudentProfile{ID: r.s.nextProfileID, StudentID: studentID, Level: 1}
	r.s.profiles[studentID] = profile
	return profile, nil
}

// GetOrCreateForUpdate matches GetOrCreate here; the TxManager mutex already
// serializes whole pipelines, which is the locking the variant exists for.
func (r *profileRepo) GetOrCreateForUpdate(studentID uint) (*model.StudentProfile, error) {
	return r.GetOrCreate(studentID)
}

func (r *profileRepo) FindByStudentID(studentID uint) (*model.StudentProfile, error) {
	profile, ok := r.s.profiles[studentID]
	if !ok {
		return &model.StudentProfile{}, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *profileRepo) AddPoints(studentID uint, points int) error {
	if profile, ok := r.s.profiles[studentID]; ok {
		profile.Points += points
	}
	return nil
}

func (r *profileRepo) AddMedal(studentID uint) error {
	if profile, ok := r.s.profiles[studentID]; ok {
		profile.Medals++
	}
	return nil
}

func (r *profileRepo) IncrementActivities(studentID uint) error {
	if profile, ok := r.s.profiles[studentID]; ok {
		profile.ActivitiesCompleted++
	}
	return nil
}

func (r *profileRepo) SetLevel(studentID uint, level int) error {
	if profile, ok := r.s.profiles[studentID]; ok {
		profile.Level = level
	}
	return nil
}

// --- questions ---

type questionRepo struct{ s *Store }

func (r *questionRepo) FindByIDWithOptions(id uint) (*model.Question, error) {
	for _, game := range r.s.games {
		for i := range game.Questions {
			if game.Questions[i].ID == id {
				return &game.Questions[i], nil
			}
		}
	}
	return &model.Question{}, gorm.ErrRecordNotFound
}

// --- games ---

type gameRepo struct{ s *Store }

func (r *gameRepo) Create(game *model.Game) error {
	r.s.nextGameID++
	game.ID = r.s.nextGameID
	game.CreatedAt = time.Now()
	// Assign IDs the way the database would: question then option, in order.
	var nextQuestionID, nextOptionID uint
	for _, existing := range r.s.games {
		for _, q := range existing.Questions {
			if q.ID > nextQuestionID {
				nextQuestionID = q.ID
			}
			for _, o := range q.Options {
				if o.ID > nextOptionID {
					nextOptionID = o.ID
				}
			}
		}
	}
	for i := range game.Questions {
		nextQuestionID++
		game.Questions[i].ID = nextQuestionID
		for j := range game.Questions[i].Options {
			nextOptionID++
			game.Questions[i].Options[j].ID = nextOptionID
			game.Questions[i].Options[j].QuestionID = nextQuestionID
		}
	}
	r.s.games[game.ID] = game
	return nil
}

func (r *gameRepo) FindByIDWithQuestions(id uint) (*model.Game, error) {
	game, ok := r.s.games[id]
	if !ok {
		return &model.Game{}, gorm.ErrRecordNotFound
	}
	return game, nil
}

func (r *gameRepo) FindAllWithQuestionCount() ([]repository.GameWithQuestionCount, error) {
	var results []repository.GameWithQuestionCount
	for _, game := range r.s.games {
		results = append(results, repository.GameWithQuestionCount{
			Game:          *game,
			QuestionCount: len(game.Questions),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

func (r *gameRepo) FindByQuestionID(questionID uint) ([]model.Game, error) {
	var games []model.Game
	for _, game := range r.s.games {
		for _, q := range game.Questions {
			if q.ID == questionID {
				games = append(games, *game)
				break
			}
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

// --- student answers ---

type answerRepo struct{ s *Store }

func (r *answerRepo) Create(answer *model.StudentAnswer) error {
	r.s.nextAnswerID++
	answer.ID = r.s.nextAnswerID
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now()
	}
	r.s.answers = append(r.s.answers, answer)
	return nil
}

func (r *answerRepo) FindByStudentAndQuestions(studentID uint, questionIDs []uint) ([]model.StudentAnswer, error) {
	wanted := make(map[uint]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var answers []model.StudentAnswer
	for _, ans := range r.s.answers {
		if ans.StudentID == studentID && wanted[ans.QuestionID] {
			answers = append(answers, *ans)
		}
	}
	// Insertion order already matches creation order.
	return answers, nil
}

func (r *answerRepo) CountByStudent(studentID uint) (int64, error) {
	var count int64
	for _, ans := range r.s.answers {
		if ans.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

// --- played games ---

type playedGameRepo struct{ s *Store }

func (r *playedGameRepo) Upsert(played *model.PlayedGame) error {
	key := playedKey{studentID: played.StudentID, gameID: played.GameID}
	if existing, ok := r.s.played[key]; ok {
		existing.Score = played.Score
		existing.Completed = played.Completed
		existing.PlayedAt = played.PlayedAt
		*played = *existing
		return nil
	}
	r.s.nextPlayedID++
	played.ID = r.s.nextPlayedID
	stored := *played
	r.s.played[key] = &stored
	return nil
}

func (r *playedGameRepo) FindByStudent(studentID uint) ([]model.PlayedGame, error) {
	var played []model.PlayedGame
	for _, pg := range r.s.played {
		if pg.StudentID == studentID {
			played = append(played, *pg)
		}
	}
	sort.Slice(played, func(i, j int) bool { return played[i].PlayedAt.After(played[j].PlayedAt) })
	return played, nil
}

func (r *playedGameRepo) CountByStudent(studentID uint) (int64, error) {
	var count int64
	for _, pg := range r.s.played {
		if pg.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

func (r *playedGameRepo) CountByStudentSince(studentID uint, since time.Time) (int64, error) {
	var count int64
	for _, pg := range r.s.played {
		if pg.StudentID == studentID && pg.PlayedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (r *playedGameRepo) Leaderboard() ([]repository.LeaderboardRow, error) {
	byStudent := make(map[uint]*repository.LeaderboardRow)
	for _, pg := range r.s.played {
		row, ok := byStudent[pg.StudentID]
		if !ok {
			row = &repository.LeaderboardRow{StudentID: pg.StudentID}
			if user, found := r.s.users[pg.StudentID]; found {
				row.FirstName = user.FirstName
				row.LastName = user.LastName
				row.Avatar = user.Avatar
			}
			if profile, found := r.s.profiles[pg.StudentID]; found {
				row.Medals = profile.Medals
			}
			byStudent[pg.StudentID] = row
		}
		row.TotalScore += pg.Score
		if pg.PlayedAt.After(row.LastActivity) {
			row.LastActivity = pg.PlayedAt
		}
	}
	rows := make([]repository.LeaderboardRow, 0, len(byStudent))
	for _, row := range byStudent {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalScore != rows[j].TotalScore {
			return rows[i].TotalScore > rows[j].TotalScore
		}
		return rows[i].StudentID < rows[j].StudentID
	})
	return rows, nil
}

// --- statistics ---

type statisticsRepo struct{ s *Store }

func (r *statisticsRepo) GetOrCreate() (*model.Statistics, error) {
	if r.s.stats == nil {
		now := time.Now()
		r.s.stats = &model.Statistics{ID: 1, LastUpdated: now, LastCertificateCheck: now}
	}
	return r.s.stats, nil
}

func (r *statisticsRepo) Save(stats *model.Statistics) error {
	r.s.stats = stats
	return nil
}

// --- certificates ---

type certificateRepo struct{ s *Store }

func (r *certificateRepo) Create(cert *model.Certificate) error {
	r.s.nextCertID++
	cert.ID = r.s.nextCertID
	if cert.CreatedAt.IsZero() {
		cert.CreatedAt = time.Now()
	}
	r.s.certs = append(r.s.certs, cert)
	return nil
}

func (r *certificateRepo) CountAll() (int64, error) {
	return int64(len(r.s.certs)), nil
}

func (r *certificateRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	for _, cert := range r.s.certs {
		if cert.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (r *certificateRepo) CountByStudent(studentID uint) (int64, error) {
	var count int64
	for _, cert := range r.s.certs {
		if cert.StudentID == studentID {
			count++
		}
	}
	return count, nil
}

func (r *certificateRepo) CountByStudentSince(studentID uint, since time.Time) (int64, error) {
	var count int64
	for _, cert := range r.s.certs {
		if cert.StudentID == studentID && cert.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

// --- knowledge trails ---

type trailRepo struct{ s *Store }

func (r *trailRepo) Create(trail *model.KnowledgeTrail) error {
	r.s.nextTrailID++
	trail.ID = r.s.nextTrailID
	if trail.CreatedAt.IsZero() {
		trail.CreatedAt = time.Now()
	}
	r.s.trails = append(r.s.trails, trail)
	return nil
}

func (r *trailRepo) FindAll() ([]model.KnowledgeTrail, error) {
	trails := make([]model.KnowledgeTrail, 0, len(r.s.trails))
	for i := len(r.s.trails) - 1; i >= 0; i-- {
		trails = append(trails, *r.s.trails[i])
	}
	return trails, nil
}

func (r *trailRepo) CountByMediaType(mediaType string) (int64, error) {
	var count int64
	for _, trail := range r.s.trails {
		if trail.MediaType == mediaType {
			count++
		}
	}
	return count, nil
}
