package service

import (
	"context"
	"strings"

	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

	"github.com/code4projects/raceboard/models"
)

// UserService authenticates API users against the users table.
type UserService struct {
	db *bun.DB
}

// NewUserService creates a UserService bound to the given database.
func NewUserService(db *bun.DB) *UserService {
	return &UserService{db: db}
}

// Authenticate looks the user up and compares the bcrypt hash. Any
// mismatch, including an unknown username, yields
// ErrInvalidCredentials so callers cannot distinguish the two.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user := &models.User{}
	err := s.db.NewSelect().Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
