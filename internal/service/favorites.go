package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/repository"
)

var (
	ErrArtistNotFound   = repository.ErrArtistNotFound
	ErrAlreadyFavorited = errors.New("artist already favorited")
)

type FavoriteRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]domain.Favorite, error)
	Create(ctx context.Context, favorite domain.Favorite) (domain.Favorite, error)
	Delete(ctx context.Context, id string) error
}

type FavoriteArtistRepository interface {
	FindByID(ctx context.Context, id string) (domain.Artist, error)
}

// FavoritesService maintains the (user, artist) favorite relations and
// keeps them unique per pair.
type FavoritesService struct {
	repo    FavoriteRepository
	artists FavoriteArtistRepository
}

func NewFavoritesService(repo FavoriteRepository, artists FavoriteArtistRepository) *FavoritesService {
	return &FavoritesService{
		repo:    repo,
		artists: artists,
	}
}

func (s *FavoritesService) List(ctx context.Context, sess domain.Session) ([]domain.Favorite, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthenticated
	}

	favorites, err := s.repo.FindByUserID(ctx, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return favorites, nil
}

// Add favorites an artist for the session user, denormalizing the artist's
// name and image into the new record. Favoriting an already-favorited
// artist fails with ErrAlreadyFavorited and creates nothing.
func (s *FavoritesService) Add(ctx context.Context, sess domain.Session, artistID string) (domain.Favorite, error) {
	if !sess.Authenticated() {
		return domain.Favorite{}, ErrUnauthenticated
	}

	artist, err := s.artists.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return domain.Favorite{}, ErrArtistNotFound
		}

		return domain.Favorite{}, fmt.Errorf("s.artists.FindByID -> %w", err)
	}

	favorites, err := s.repo.FindByUserID(ctx, sess.User.ID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}
	if IsFavorited(favorites, artistID) {
		return domain.Favorite{}, ErrAlreadyFavorited
	}

	created, err := s.repo.Create(ctx, domain.Favorite{
		UserID:      sess.User.ID,
		ArtistID:    artist.ID,
		ArtistName:  artist.Name,
		ArtistImage: artist.Image,
	})
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Remove deletes a favorite by record id. Removing an id that is already
// gone counts as success, so the operation is idempotent to the caller.
func (s *FavoritesService) Remove(ctx context.Context, sess domain.Session, favoriteID string) error {
	if !sess.Authenticated() {
		return ErrUnauthenticated
	}

	if err := s.repo.Delete(ctx, favoriteID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// IsFavorited is a membership test over an already-loaded favorite set.
func IsFavorited(favorites []domain.Favorite, artistID string) bool {
	for _, favorite := range favorites {
		if favorite.ArtistID == artistID {
			return true
		}
	}

	return false
}
