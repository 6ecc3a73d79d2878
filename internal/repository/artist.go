package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/gateway"
)

var ErrArtistNotFound = errors.New("artist not found")

type ArtistRepository struct {
	gw Gateway
}

func NewArtistRepository(gw Gateway) *ArtistRepository {
	return &ArtistRepository{
		gw: gw,
	}
}

func (r *ArtistRepository) FindAll(ctx context.Context) ([]domain.Artist, error) {
	var artists []domain.Artist
	if err := r.gw.List(ctx, artistsCollection, &artists); err != nil {
		return nil, fmt.Errorf("r.gw.List -> %w", err)
	}

	return artists, nil
}

func (r *ArtistRepository) FindByID(ctx context.Context, id string) (domain.Artist, error) {
	var artist domain.Artist
	if err := r.gw.Get(ctx, artistsCollection, id, &artist); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return domain.Artist{}, ErrArtistNotFound
		}

		return domain.Artist{}, fmt.Errorf("r.gw.Get -> %w", err)
	}

	return artist, nil
}
