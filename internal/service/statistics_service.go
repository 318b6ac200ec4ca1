package service

import (
	"fmt"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
)

// StatisticsService reports current counts together with their movement
// since the previous read. Two differencing styles coexist and must not be
// mixed up: plain counters (students, teachers, media, points, medals) are
// snapshot-overwritten and report current minus stored, while "new since
// last check" metrics (certificates, played games) are timestamp-bounded
// counts folded into a running total.
type StatisticsService interface {
	AdminStats() (*dto.AdminStatsDTO, error)
	TeacherStats() (*dto.TeacherStatsDTO, error)
	StudentStats(studentID uint) (*dto.StudentStatsDTO, error)
}

type statisticsService struct {
	txm repository.TxManager
	now func() time.Time
}

func NewStatisticsService(txm repository.TxManager) StatisticsService {
	return &statisticsService{txm: txm, now: time.Now}
}

// NewStatisticsServiceWithClock is for tests that need deterministic timestamps.
func NewStatisticsServiceWithClock(txm repository.TxManager, now func() time.Time) StatisticsService {
	return &statisticsService{txm: txm, now: now}
}

func (s *statisticsService) AdminStats() (*dto.AdminStatsDTO, error) {
	var out dto.AdminStatsDTO
	err := s.txm.Transaction(func(r *repository.Repositories) error {
		students, err := r.Users.CountByRole(model.RoleStudent)
		if err != nil {
			return fmt.Errorf("counting students: %w", err)
		}
		teachers, err := r.Users.CountByRole(model.RoleTeacher)
		if err != nil {
			return fmt.Errorf("counting teachers: %w", err)
		}
		videos, err := r.KnowledgeTrails.CountByMediaType(model.MediaTypeVideo)
		if err != nil {
			return fmt.Errorf("counting videos: %w", err)
		}
		pdfs, err := r.KnowledgeTrails.CountByMediaType(model.MediaTypePDF)
		if err != nil {
			return fmt.Errorf("counting pdfs: %w", err)
		}

		stats, err := r.Statistics.GetOrCreate()
		if err != nil {
			return fmt.Errorf("loading statistics snapshot: %w", err)
		}

		out = dto.AdminStatsDTO{
			Students:             diffMetric(int(students), stats.Students),
			Teachers:             diffMetric(int(teachers), stats.Teachers),
			KnowledgeTrailVideos: diffMetric(int(videos), stats.KnowledgeTrailVideos),
			KnowledgeTrailPDFs:   diffMetric(int(pdfs), stats.KnowledgeTrailPDFs),
		}

		stats.Students = int(students)
		stats.Teachers = int(teachers)
		stats.KnowledgeTrailVideos = int(videos)
		stats.KnowledgeTrailPDFs = int(pdfs)
		return r.Statistics.Save(stats)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *statisticsService) TeacherStats() (*dto.TeacherStatsDTO, error) {
	var out dto.TeacherStatsDTO
	err := s.txm.Transaction(func(r *repository.Repositories) error {
		students, err := r.Users.CountByRole(model.RoleStudent)
		if err != nil {
			return fmt.Errorf("counting students: %w", err)
		}
		teachers, err := r.Users.CountByRole(model.RoleTeacher)
		if err != nil {
			return fmt.Errorf("counting teachers: %w", err)
		}
		videos, err := r.KnowledgeTrails.CountByMediaType(model.MediaTypeVideo)
		if err != nil {
			return fmt.Errorf("counting videos: %w", err)
		}
		certificates, err := r.Certificates.CountAll()
		if err != nil {
			return fmt.Errorf("counting certificates: %w", err)
		}

		stats, err := r.Statistics.GetOrCreate()
		if err != nil {
			return fmt.Errorf("loading statistics snapshot: %w", err)
		}

		newCertificates, err := r.Certificates.CountSince(stats.LastUpdated)
		if err != nil {
			return fmt.Errorf("counting new certificates: %w", err)
		}

		out = dto.TeacherStatsDTO{
			Students:     diffMetric(int(students), stats.Students),
			Classes:      diffMetric(int(teachers), stats.Teachers),
			Lessons:      diffMetric(int(videos), stats.KnowledgeTrailVideos),
			Certificates: dto.MetricDTO{Count: int(certificates), Difference: int(newCertificates)},
		}

		stats.Students = int(students)
		stats.Teachers = int(teachers)
		stats.KnowledgeTrailVideos = int(videos)
		stats.CertificatesIssued += int(newCertificates)
		stats.LastUpdated = s.now()
		return r.Statistics.Save(stats)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *statisticsService) StudentStats(studentID uint) (*dto.StudentStatsDTO, error) {
	var out dto.StudentStatsDTO
	err := s.txm.Transaction(func(r *repository.Repositories) error {
		profile, err := r.Profiles.GetOrCreate(studentID)
		if err != nil {
			return fmt.Errorf("loading profile for student %d: %w", studentID, err)
		}
		playedGames, err := r.PlayedGames.CountByStudent(studentID)
		if err != nil {
			return fmt.Errorf("counting played games: %w", err)
		}
		certificates, err := r.Certificates.CountByStudent(studentID)
		if err != nil {
			return fmt.Errorf("counting certificates: %w", err)
		}

		stats, err := r.Statistics.GetOrCreate()
		if err != nil {
			return fmt.Errorf("loading statistics snapshot: %w", err)
		}

		newCertificates, err := r.Certificates.CountByStudentSince(studentID, stats.LastUpdated)
		if err != nil {
			return fmt.Errorf("counting new certificates: %w", err)
		}
		newPlayedGames, err := r.PlayedGames.CountByStudentSince(studentID, stats.LastUpdated)
		if err != nil {
			return fmt.Errorf("counting new played games: %w", err)
		}

		out = dto.StudentStatsDTO{
			Points:       diffMetric(profile.Points, stats.StudentPoints),
			Medals:       diffMetric(profile.Medals, stats.StudentMedals),
			PlayedGames:  dto.MetricDTO{Count: int(playedGames), Difference: int(newPlayedGames)},
			Certificates: dto.MetricDTO{Count: int(certificates), Difference: int(newCertificates)},
		}

		stats.StudentPoints = profile.Points
		stats.StudentMedals = profile.Medals
		stats.CertificatesIssued += int(newCertificates)
		stats.LastUpdated = s.now()
		return r.Statistics.Save(stats)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func diffMetric(current, stored int) dto.MetricDTO {
	return dto.MetricDTO{Count: current, Difference: current - stored}
}
