package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/shared/auth"
)

type Service struct {
	Repo   Repo
	Hasher *auth.Hasher
	Tokens *auth.TokenIssuer
}

func NewService(repo Repo, hasher *auth.Hasher, tokens *auth.TokenIssuer) *Service {
	return &Service{Repo: repo, Hasher: hasher, Tokens: tokens}
}

// Register creates an account and returns the stored user.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, errors.New("a valid email is required")
	}
	if len(password) < 8 {
		return User{}, errors.New("password must be at least 8 characters")
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Authenticate verifies credentials and returns a signed access token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, User, error) {
	if s == nil || s.Repo == nil {
		return "", User{}, errors.New("users service not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", User{}, ErrInvalidCredentials
		}
		return "", User{}, err
	}
	if !s.Hasher.Verify(user.PasswordHash, password) {
		return "", User{}, ErrInvalidCredentials
	}
	token, err := s.Tokens.Sign(user.ID, user.Email)
	if err != nil {
		return "", User{}, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
