package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Minister-Isaac/Avagapp-Backend/internal/dto"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/model"
	"github.com/Minister-Isaac/Avagapp-Backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// Claims is the JWT payload attached to every authenticated request.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Signup(req dto.SignupDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error)
	ParseToken(token string) (*Claims, error)
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	secret      []byte
}

func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, secret string) AuthService {
	return &authService{userRepo: userRepo, profileRepo: profileRepo, secret: []byte(secret)}
}

func (s *authService) Signup(req dto.SignupDTO) (*dto.AuthResponseDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    string(hash),
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Signup: failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	// Students get their score ledger up front so the first answer
	// submission has a row to increment.
	if user.Role == model.RoleStudent {
		if _, err := s.profileRepo.GetOrCreate(user.ID); err != nil {
			log.Error().Err(err).Uint("userID", user.ID).Msg("Signup: failed to create student profile")
			return nil, fmt.Errorf("creating student profile: %w", err)
		}
	}

	return s.authResponse(&user)
}

func (s *authService) Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *authService) ParseToken(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponseDTO, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			Subject:   user.Email,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &dto.AuthResponseDTO{
		User: dto.UserResponseDTO{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Avatar:    user.Avatar,
			Role:      user.Role,
		},
		AccessToken: signed,
	}, nil
}
