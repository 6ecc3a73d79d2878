package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Keerthid-10/taylor/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	gw Gateway
}

func NewUserRepository(gw Gateway) *UserRepository {
	return &UserRepository{
		gw: gw,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	var created domain.User
	if err := r.gw.Create(ctx, usersCollection, user, &created); err != nil {
		return domain.User{}, fmt.Errorf("r.gw.Create -> %w", err)
	}

	return created, nil
}

// FindByEmail reads the full collection and scans it. The backing store
// indexes nothing, so a filtered query would still walk every record; the
// scan keeps the credential check in one place.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var users []domain.User
	if err := r.gw.List(ctx, usersCollection, &users); err != nil {
		return domain.User{}, fmt.Errorf("r.gw.List -> %w", err)
	}

	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}
