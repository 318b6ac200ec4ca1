package service

import (
	"errors"
	"testing"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository/memory"
)

func TestCreateKnowledgeTrail(t *testing.T) {
	repos := memory.NewStore().Repositories()
	svc := NewKnowledgeTrailService(repos.KnowledgeTrails)
	teacher := &model.User{ID: 7, Role: model.RoleTeacher}

	trail, err := svc.Create(teacher, dto.KnowledgeTrailCreateDTO{
		Title:     "Fractions 101",
		MediaType: model.MediaTypeVideo,
		MediaURL:  strPtr("https://cdn.example.com/fractions.mp4"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if trail.ID == 0 || trail.MediaType != model.MediaTypeVideo {
		t.Fatalf("trail = %+v", trail)
	}
	if trail.AssignedByID == nil || *trail.AssignedByID != teacher.ID {
		t.Fatalf("AssignedByID = %v, want %d", trail.AssignedByID, teacher.ID)
	}
	if !trail.IsPublic {
		t.Fatal("trail should default to public")
	}

	count, err := repos.KnowledgeTrails.CountByMediaType(model.MediaTypeVideo)
	if err != nil || count != 1 {
		t.Fatalf("CountByMediaType = (%d, %v), want (1, nil)", count, err)
	}

	listed, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Fractions 101" {
		t.Fatalf("List = %+v", listed)
	}
}

func TestCreateKnowledgeTrailStudentIsForbidden(t *testing.T) {
	svc := NewKnowledgeTrailService(memory.NewStore().Repositories().KnowledgeTrails)
	student := &model.User{ID: 1, Role: model.RoleStudent}

	_, err := svc.Create(student, dto.KnowledgeTrailCreateDTO{Title: "x", MediaType: model.MediaTypePDF})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}
