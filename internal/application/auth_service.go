package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/domain/entity"
	repo "github.com/pawcare/pawcare-api/internal/domain/repository"
	"github.com/pawcare/pawcare-api/pkg/helpers"
)

// AuthService handles registration, credential verification, and token
// issuance. Normalization and hashing happen here, on the write path,
// before anything is persisted.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	Phone    string
}

// Register normalizes, hashes, persists, and issues a session token.
// Duplicate emails are rejected case-insensitively.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, time.Time, error) {
	email := helpers.LowerTrim(in.Email)
	if existing, err := s.Users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", time.Time{}, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, "", time.Time{}, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	u := &entity.User{
		Name:     helpers.TitleCase(strings.TrimSpace(in.Name)),
		Email:    email,
		Password: hash,
		Role:     in.Role,
		Phone:    strings.TrimSpace(in.Phone),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		return nil, "", time.Time{}, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	return u, token, exp, nil
}

// Login verifies the credentials and issues a session token. The same
// error covers unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, helpers.LowerTrim(email))
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Profile loads the acting identity's own record.
func (s *AuthService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	return s.Users.GetByID(ctx, userID)
}
