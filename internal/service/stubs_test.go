package service

import (
	"context"
	"fmt"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/repository"
)

// In-memory repository stubs. Each one keeps the writes it receives so
// tests can assert on exactly what was persisted.

type stubUserRepo struct {
	users     []domain.User
	createErr error
}

func (s *stubUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if s.createErr != nil {
		return domain.User{}, s.createErr
	}

	user.ID = fmt.Sprintf("u%d", len(s.users)+1)
	s.users = append(s.users, user)

	return user, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

type inventoryUpdate struct {
	concertID string
	remaining int
}

type stubConcertRepo struct {
	concerts   []domain.Concert
	findAllErr error
	updateErr  error
	updates    []inventoryUpdate
}

func (s *stubConcertRepo) FindAll(_ context.Context) ([]domain.Concert, error) {
	if s.findAllErr != nil {
		return nil, s.findAllErr
	}

	return s.concerts, nil
}

func (s *stubConcertRepo) FindByID(_ context.Context, id string) (domain.Concert, error) {
	for _, concert := range s.concerts {
		if concert.ID == id {
			return concert, nil
		}
	}

	return domain.Concert{}, repository.ErrConcertNotFound
}

func (s *stubConcertRepo) UpdateAvailableTickets(_ context.Context, id string, remaining int) (domain.Concert, error) {
	if s.updateErr != nil {
		return domain.Concert{}, s.updateErr
	}

	s.updates = append(s.updates, inventoryUpdate{concertID: id, remaining: remaining})
	for i, concert := range s.concerts {
		if concert.ID == id {
			s.concerts[i].AvailableTickets = remaining

			return s.concerts[i], nil
		}
	}

	return domain.Concert{}, repository.ErrConcertNotFound
}

type stubPurchaseRepo struct {
	records   []domain.PurchaseRecord
	createErr error
}

func (s *stubPurchaseRepo) Create(_ context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error) {
	if s.createErr != nil {
		return domain.PurchaseRecord{}, s.createErr
	}

	record.ID = fmt.Sprintf("p%d", len(s.records)+1)
	s.records = append(s.records, record)

	return record, nil
}

func (s *stubPurchaseRepo) FindByUserID(_ context.Context, userID string) ([]domain.PurchaseRecord, error) {
	matched := make([]domain.PurchaseRecord, 0)
	for _, record := range s.records {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

type stubFavoriteRepo struct {
	favorites []domain.Favorite
	deleted   []string
	deleteErr error
}

func (s *stubFavoriteRepo) FindByUserID(_ context.Context, userID string) ([]domain.Favorite, error) {
	matched := make([]domain.Favorite, 0)
	for _, favorite := range s.favorites {
		if favorite.UserID == userID {
			matched = append(matched, favorite)
		}
	}

	return matched, nil
}

func (s *stubFavoriteRepo) Create(_ context.Context, favorite domain.Favorite) (domain.Favorite, error) {
	favorite.ID = fmt.Sprintf("f%d", len(s.favorites)+1)
	s.favorites = append(s.favorites, favorite)

	return favorite, nil
}

func (s *stubFavoriteRepo) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}

	for i, favorite := range s.favorites {
		if favorite.ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.deleted = append(s.deleted, id)

			return nil
		}
	}

	return repository.ErrFavoriteNotFound
}

type stubArtistRepo struct {
	artists []domain.Artist
}

func (s *stubArtistRepo) FindAll(_ context.Context) ([]domain.Artist, error) {
	return s.artists, nil
}

func (s *stubArtistRepo) FindByID(_ context.Context, id string) (domain.Artist, error) {
	for _, artist := range s.artists {
		if artist.ID == id {
			return artist, nil
		}
	}

	return domain.Artist{}, repository.ErrArtistNotFound
}

func authedSession() domain.Session {
	return domain.Session{
		Key: "session-key",
		User: domain.User{
			ID:       "u1",
			UserName: "Swift",
			Email:    "swift@example.com",
			Password: "folklore8",
		},
	}
}
