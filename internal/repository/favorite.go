package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/gateway"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository struct {
	gw Gateway
}

func NewFavoriteRepository(gw Gateway) *FavoriteRepository {
	return &FavoriteRepository{
		gw: gw,
	}
}

func (r *FavoriteRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	if err := r.gw.Query(ctx, favoritesCollection, "userId", userID, &favorites); err != nil {
		return nil, fmt.Errorf("r.gw.Query -> %w", err)
	}

	return favorites, nil
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite domain.Favorite) (domain.Favorite, error) {
	var created domain.Favorite
	if err := r.gw.Create(ctx, favoritesCollection, favorite, &created); err != nil {
		return domain.Favorite{}, fmt.Errorf("r.gw.Create -> %w", err)
	}

	return created, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id string) error {
	if err := r.gw.Delete(ctx, favoritesCollection, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrFavoriteNotFound
		}

		return fmt.Errorf("r.gw.Delete -> %w", err)
	}

	return nil
}
