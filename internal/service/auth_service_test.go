package service

import (
	"errors"
	"testing"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository/memory"
)

func newAuthFixture(t *testing.T) (AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	return NewAuthService(repos.Users, repos.Profiles, "test-secret"), store
}

func TestSignupAndLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(t)

	signedUp, err := svc.Signup(dto.SignupDTO{
		FirstName: "Ana", LastName: "Silva",
		Email: "ana@example.com", Password: "s3cret!", Role: model.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if signedUp.AccessToken == "" {
		t.Fatal("Signup returned no access token")
	}

	loggedIn, err := svc.Login(dto.LoginDTO{Email: "ana@example.com", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := svc.ParseToken(loggedIn.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != signedUp.User.ID || claims.Role != model.RoleStudent {
		t.Fatalf("claims = %+v, want user %d with role student", claims, signedUp.User.ID)
	}
}

func TestSignupCreatesStudentLedger(t *testing.T) {
	svc, store := newAuthFixture(t)

	resp, err := svc.Signup(dto.SignupDTO{
		FirstName: "Ana", Email: "ana@example.com", Password: "pw", Role: model.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	profile, err := store.Repositories().Profiles.FindByStudentID(resp.User.ID)
	if err != nil {
		t.Fatalf("student signed up without a ledger: %v", err)
	}
	if profile.Level != 1 || profile.Points != 0 {
		t.Fatalf("fresh ledger = {points:%d level:%d}, want {0 1}", profile.Points, profile.Level)
	}
}

func TestSignupTeacherGetsNoLedger(t *testing.T) {
	svc, store := newAuthFixture(t)

	resp, err := svc.Signup(dto.SignupDTO{
		FirstName: "Rui", Email: "rui@example.com", Password: "pw", Role: model.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if _, err := store.Repositories().Profiles.FindByStudentID(resp.User.ID); err == nil {
		t.Fatal("teacher signup created a score ledger")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	req := dto.SignupDTO{FirstName: "Ana", Email: "ana@example.com", Password: "pw", Role: model.RoleStudent}
	if _, err := svc.Signup(req); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	if _, err := svc.Signup(req); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, err := svc.Signup(dto.SignupDTO{FirstName: "Ana", Email: "ana@example.com", Password: "right-password", Role: model.RoleStudent}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, err := svc.Login(dto.LoginDTO{Email: "ana@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(dto.LoginDTO{Email: "nobody@example.com", Password: "pw"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture(t)
	if _, err := svc.ParseToken("not.a.token"); err == nil {
		t.Fatal("garbage token parsed without error")
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	svc, _ := newAuthFixture(t)
	other, _ := newAuthFixture(t)

	resp, err := other.Signup(dto.SignupDTO{FirstName: "Ana", Email: "ana@example.com", Password: "pw", Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	foreign := NewAuthService(memory.NewStore().Repositories().Users, memory.NewStore().Repositories().Profiles, "another-secret")
	if _, err := foreign.ParseToken(resp.AccessToken); err == nil {
		t.Fatal("token signed with a different secret parsed without error")
	}
	if _, err := svc.ParseToken(resp.AccessToken); err != nil {
		t.Fatalf("token from same-secret service failed to parse: %v", err)
	}
}
