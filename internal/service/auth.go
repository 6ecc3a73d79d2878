package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/repository"
	"github.com/Keerthid-10/taylor/internal/session"
)

var (
	ErrUnauthenticated    = errors.New("login required")
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService struct {
	repo     AuthUserRepository
	sessions *session.Store
}

func NewAuthService(repo AuthUserRepository, sessions *session.Store) *AuthService {
	return &AuthService{
		repo:     repo,
		sessions: sessions,
	}
}

// Register stores the profile as submitted. The backing store does not
// enforce email uniqueness and neither does the storefront; credentials
// are kept in plaintext because login compares against the stored value
// directly.
func (s *AuthService) Register(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login matches the email against the user collection, then compares the
// password. On success the full matched profile goes into the session
// store under a fresh key.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Session{}, ErrUserNotFound
		}

		return domain.Session{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if user.Password != password {
		return domain.Session{}, ErrInvalidCredentials
	}

	key := uuid.NewString()
	s.sessions.Set(key, user)

	return domain.Session{Key: key, User: user}, nil
}

// Logout drops the server-side session, invalidating any token that still
// references it.
func (s *AuthService) Logout(sess domain.Session) {
	if sess.Key == "" {
		return
	}

	s.sessions.Clear(sess.Key)
}
