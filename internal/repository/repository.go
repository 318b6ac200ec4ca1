package repository

import "gorm.io/gorm"

// Repositories bundles every repository over one database handle so the
// scoring pipeline can run against a transaction instead of the root *gorm.DB.
type Repositories struct {
	Users           UserRepository
	Profiles        ProfileRepository
	Questions       QuestionRepository
	Games           GameRepository
	Answers         StudentAnswerRepository
	PlayedGames     PlayedGameRepository
	Statistics      StatisticsRepository
	Certificates    CertificateRepository
	KnowledgeTrails KnowledgeTrailRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Profiles:        NewProfileRepository(db),
		Questions:       NewQuestionRepository(db),
		Games:           NewGameRepository(db),
		Answers:         NewStudentAnswerRepository(db),
		PlayedGames:     NewPlayedGameRepository(db),
		Statistics:      NewStatisticsRepository(db),
		Certificates:    NewCertificateRepository(db),
		KnowledgeTrails: NewKnowledgeTrailRepository(db),
	}
}

// TxManager runs a function against a transaction-scoped repository set.
// The callback either commits as a whole or rolls back as a whole.
type TxManager interface {
	Transaction(fn func(r *Repositories) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Transaction(fn func(r *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
