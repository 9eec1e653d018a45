// Package services contains server-side business logic. This file implements
// UserService: registration and login, both returning a freshly issued
// identity token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskhub/internal/common"
	"taskhub/internal/server/auth"
	"taskhub/internal/server/config"
	"taskhub/internal/server/models"
	"taskhub/internal/server/repositories/repomanager"
)

// bcryptCost matches the 10-round hashing used by the rest of the stack.
const bcryptCost = 10

// UserService provides authentication-related operations:
// - Register: create a user and mint a token
// - Login: verify credentials and mint a token
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns a
// signed identity token. A taken email yields common.ErrorAlreadyExists;
// any unexpected store failure surfaces as common.ErrorInternal.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", common.ErrorInternal
	}

	return s.issueToken(user.ID)
}

// Login verifies the email/password pair and returns a signed identity token.
// An unknown email and a wrong password are indistinguishable to the caller:
// both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	return s.issueToken(user.ID)
}

func (s *UserService) issueToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
