package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository/memory"
)

var statsBase = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

type statsFixture struct {
	repos   *repository.Repositories
	service StatisticsService
	clock   *testClock
	seq     int
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()

	// Pin the snapshot's reference time so timestamp-bounded counts are
	// deterministic.
	stats, err := repos.Statistics.GetOrCreate()
	if err != nil {
		t.Fatalf("initializing statistics: %v", err)
	}
	stats.LastUpdated = statsBase
	stats.LastCertificateCheck = statsBase
	if err := repos.Statistics.Save(stats); err != nil {
		t.Fatalf("saving statistics: %v", err)
	}

	clock := &testClock{current: statsBase.Add(time.Hour)}
	return &statsFixture{
		repos:   repos,
		service: NewStatisticsServiceWithClock(store.TxManager(), clock.Now),
		clock:   clock,
	}
}

func (f *statsFixture) seedUsers(t *testing.T, role string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		f.seq++
		user := &model.User{FirstName: "User", Email: fmt.Sprintf("%s%d@example.com", role, f.seq), Role: role}
		if err := f.repos.Users.Create(user); err != nil {
			t.Fatalf("seeding %s: %v", role, err)
		}
	}
}

func TestAdminStatsFirstReadCountsEverythingAsNew(t *testing.T) {
	f := newStatsFixture(t)
	f.seedUsers(t, model.RoleStudent, 10)
	f.seedUsers(t, model.RoleTeacher, 2)

	stats, err := f.service.AdminStats()
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if stats.Students.Count != 10 || stats.Students.Difference != 10 {
		t.Fatalf("Students = %+v, want {10 10}", stats.Students)
	}
	if stats.Teachers.Count != 2 || stats.Teachers.Difference != 2 {
		t.Fatalf("Teachers = %+v, want {2 2}", stats.Teachers)
	}
}

func TestAdminStatsReportsGrowthSincePreviousRead(t *testing.T) {
	f := newStatsFixture(t)
	f.seedUsers(t, model.RoleStudent, 10)

	if _, err := f.service.AdminStats(); err != nil {
		t.Fatalf("first AdminStats: %v", err)
	}
	f.seedUsers(t, model.RoleStudent, 2)

	stats, err := f.service.AdminStats()
	if err != nil {
		t.Fatalf("second AdminStats: %v", err)
	}
	if stats.Students.Count != 12 || stats.Students.Difference != 2 {
		t.Fatalf("Students = %+v, want {12 2}", stats.Students)
	}
}

func TestAdminStatsDoesNotAdvanceLastUpdated(t *testing.T) {
	f := newStatsFixture(t)
	f.seedUsers(t, model.RoleStudent, 3)

	if _, err := f.service.AdminStats(); err != nil {
		t.Fatalf("AdminStats: %v", err)
	}

	stats, err := f.repos.Statistics.GetOrCreate()
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if !stats.LastUpdated.Equal(statsBase) {
		t.Fatalf("LastUpdated moved to %v; only teacher and student reads own it", stats.LastUpdated)
	}
}

func TestTeacherStatsAccumulatesCertificates(t *testing.T) {
	f := newStatsFixture(t)
	f.seedUsers(t, model.RoleStudent, 5)

	for i := 0; i < 3; i++ {
		cert := &model.Certificate{StudentID: 1, Reference: "ref", IssuedAt: statsBase.Add(30 * time.Minute)}
		cert.CreatedAt = statsBase.Add(30 * time.Minute)
		if err := f.repos.Certificates.Create(cert); err != nil {
			t.Fatalf("seeding certificate: %v", err)
		}
	}

	first, err := f.service.TeacherStats()
	if err != nil {
		t.Fatalf("first TeacherStats: %v", err)
	}
	if first.Certificates.Count != 3 || first.Certificates.Difference != 3 {
		t.Fatalf("Certificates = %+v, want {3 3}", first.Certificates)
	}

	// No new certificates between reads: the delta drops to zero even
	// though the total holds.
	second, err := f.service.TeacherStats()
	if err != nil {
		t.Fatalf("second TeacherStats: %v", err)
	}
	if second.Certificates.Count != 3 || second.Certificates.Difference != 0 {
		t.Fatalf("Certificates = %+v, want {3 0}", second.Certificates)
	}

	// One more after the last read shows up alone.
	cert := &model.Certificate{StudentID: 1, Reference: "ref2", IssuedAt: f.clock.current}
	cert.CreatedAt = f.clock.current.Add(time.Minute)
	if err := f.repos.Certificates.Create(cert); err != nil {
		t.Fatalf("seeding certificate: %v", err)
	}
	third, err := f.service.TeacherStats()
	if err != nil {
		t.Fatalf("third TeacherStats: %v", err)
	}
	if third.Certificates.Count != 4 || third.Certificates.Difference != 1 {
		t.Fatalf("Certificates = %+v, want {4 1}", third.Certificates)
	}
}

func TestStudentStatsSnapshotsCurrentTotals(t *testing.T) {
	f := newStatsFixture(t)
	student := &model.User{FirstName: "Ana", Email: "ana@example.com", Role: model.RoleStudent}
	if err := f.repos.Users.Create(student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}
	if _, err := f.repos.Profiles.GetOrCreate(student.ID); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}
	if err := f.repos.Profiles.AddPoints(student.ID, 100); err != nil {
		t.Fatalf("adding points: %v", err)
	}
	if err := f.repos.Profiles.AddMedal(student.ID); err != nil {
		t.Fatalf("adding medal: %v", err)
	}

	first, err := f.service.StudentStats(student.ID)
	if err != nil {
		t.Fatalf("first StudentStats: %v", err)
	}
	if first.Points.Count != 100 || first.Points.Difference != 100 {
		t.Fatalf("Points = %+v, want {100 100}", first.Points)
	}
	if first.Medals.Count != 1 || first.Medals.Difference != 1 {
		t.Fatalf("Medals = %+v, want {1 1}", first.Medals)
	}

	// The snapshot stores the current totals, so an unchanged ledger reads
	// back with a zero delta.
	second, err := f.service.StudentStats(student.ID)
	if err != nil {
		t.Fatalf("second StudentStats: %v", err)
	}
	if second.Points.Count != 100 || second.Points.Difference != 0 {
		t.Fatalf("Points = %+v, want {100 0}", second.Points)
	}

	if err := f.repos.Profiles.AddPoints(student.ID, 20); err != nil {
		t.Fatalf("adding points: %v", err)
	}
	third, err := f.service.StudentStats(student.ID)
	if err != nil {
		t.Fatalf("third StudentStats: %v", err)
	}
	if third.Points.Count != 120 || third.Points.Difference != 20 {
		t.Fatalf("Points = %+v, want {120 20}", third.Points)
	}
}

func TestStudentStatsCountsNewPlayedGames(t *testing.T) {
	f := newStatsFixture(t)
	student := &model.User{FirstName: "Ana", Email: "ana@example.com", Role: model.RoleStudent}
	if err := f.repos.Users.Create(student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}

	err := f.repos.PlayedGames.Upsert(&model.PlayedGame{
		StudentID: student.ID, GameID: 1, Score: 100, Completed: true,
		PlayedAt: statsBase.Add(10 * time.Minute),
	})
	if err != nil {
		t.Fatalf("seeding played game: %v", err)
	}

	first, err := f.service.StudentStats(student.ID)
	if err != nil {
		t.Fatalf("first StudentStats: %v", err)
	}
	if first.PlayedGames.Count != 1 || first.PlayedGames.Difference != 1 {
		t.Fatalf("PlayedGames = %+v, want {1 1}", first.PlayedGames)
	}

	second, err := f.service.StudentStats(student.ID)
	if err != nil {
		t.Fatalf("second StudentStats: %v", err)
	}
	if second.PlayedGames.Count != 1 || second.PlayedGames.Difference != 0 {
		t.Fatalf("PlayedGames = %+v, want {1 0}", second.PlayedGames)
	}
}
