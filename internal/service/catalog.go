package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Keerthid-10/taylor/internal/domain"
)

const (
	dashboardArtistLimit   = 6
	dashboardConcertLimit  = 4
	dashboardPurchaseLimit = 3
)

type CatalogArtistRepository interface {
	FindAll(ctx context.Context) ([]domain.Artist, error)
}

type CatalogConcertRepository interface {
	FindAll(ctx context.Context) ([]domain.Concert, error)
	FindByID(ctx context.Context, id string) (domain.Concert, error)
}

// CatalogService serves the read-only artist and concert views and the
// home dashboard aggregate.
type CatalogService struct {
	artists   CatalogArtistRepository
	concerts  CatalogConcertRepository
	favorites FavoriteRepository
	purchases BookingPurchaseRepository
}

func NewCatalogService(
	artists CatalogArtistRepository,
	concerts CatalogConcertRepository,
	favorites FavoriteRepository,
	purchases BookingPurchaseRepository,
) *CatalogService {
	return &CatalogService{
		artists:   artists,
		concerts:  concerts,
		favorites: favorites,
		purchases: purchases,
	}
}

func (s *CatalogService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.artists.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.artists.FindAll -> %w", err)
	}

	return artists, nil
}

func (s *CatalogService) ListConcerts(ctx context.Context) ([]domain.Concert, error) {
	concerts, err := s.concerts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.concerts.FindAll -> %w", err)
	}

	return concerts, nil
}

func (s *CatalogService) GetConcert(ctx context.Context, id string) (domain.Concert, error) {
	return s.concerts.FindByID(ctx, id)
}

// Dashboard assembles the home view for the session user: a slice of the
// artist catalog, the user's favorites, the next bookable concerts and the
// latest purchases. Recomputed on every call.
func (s *CatalogService) Dashboard(ctx context.Context, sess domain.Session) (domain.Dashboard, error) {
	if !sess.Authenticated() {
		return domain.Dashboard{}, ErrUnauthenticated
	}

	artists, err := s.artists.FindAll(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.artists.FindAll -> %w", err)
	}
	if len(artists) > dashboardArtistLimit {
		artists = artists[:dashboardArtistLimit]
	}

	favorites, err := s.favorites.FindByUserID(ctx, sess.User.ID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.favorites.FindByUserID -> %w", err)
	}

	concerts, err := s.concerts.FindAll(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.concerts.FindAll -> %w", err)
	}
	upcoming := upcomingConcerts(concerts, time.Now(), dashboardConcertLimit)

	purchases, err := s.purchases.FindByUserID(ctx, sess.User.ID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("s.purchases.FindByUserID -> %w", err)
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].PurchaseDate > purchases[j].PurchaseDate
	})
	if len(purchases) > dashboardPurchaseLimit {
		purchases = purchases[:dashboardPurchaseLimit]
	}

	return domain.Dashboard{
		Artists:          artists,
		Favorites:        favorites,
		UpcomingConcerts: upcoming,
		RecentPurchases:  purchases,
	}, nil
}

// SummarizeByContinent maps continent name to the number of concerts held
// there. An empty input yields an empty map.
func SummarizeByContinent(concerts []domain.Concert) map[string]int {
	summary := make(map[string]int)
	for _, concert := range concerts {
		summary[concert.Continent]++
	}

	return summary
}

// FilterByContinent returns the input unchanged for "All", otherwise the
// concerts whose continent matches exactly, preserving order.
func FilterByContinent(concerts []domain.Concert, continent string) []domain.Concert {
	if continent == "All" {
		return concerts
	}

	filtered := make([]domain.Concert, 0)
	for _, concert := range concerts {
		if concert.Continent == continent {
			filtered = append(filtered, concert)
		}
	}

	return filtered
}

// upcomingConcerts keeps concerts dated today or later that still have
// tickets, soonest first, capped at limit. Concerts with unparseable
// dates are dropped rather than guessed at.
func upcomingConcerts(concerts []domain.Concert, now time.Time, limit int) []domain.Concert {
	today := now.Truncate(24 * time.Hour)

	upcoming := make([]domain.Concert, 0)
	for _, concert := range concerts {
		date, ok := parseConcertDate(concert.Date)
		if !ok || date.Before(today) || concert.SoldOut() {
			continue
		}
		upcoming = append(upcoming, concert)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return upcoming
}

func parseConcertDate(value string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}

	return time.Time{}, false
}
