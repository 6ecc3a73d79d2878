package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keerthid-10/taylor/internal/domain"
)

func TestSummarizeByContinent(t *testing.T) {
	concerts := []domain.Concert{
		{ID: "c1", Continent: "Asia"},
		{ID: "c2", Continent: "Europe"},
		{ID: "c3", Continent: "Asia"},
	}

	summary := SummarizeByContinent(concerts)
	assert.Equal(t, map[string]int{"Asia": 2, "Europe": 1}, summary)
}

func TestSummarizeByContinentEmpty(t *testing.T) {
	summary := SummarizeByContinent(nil)
	require.NotNil(t, summary)
	assert.Empty(t, summary)
}

func TestFilterByContinent(t *testing.T) {
	concerts := []domain.Concert{
		{ID: "c1", Continent: "Asia"},
		{ID: "c2", Continent: "Europe"},
		{ID: "c3", Continent: "Asia"},
	}

	filtered := FilterByContinent(concerts, "Asia")
	require.Len(t, filtered, 2)
	assert.Equal(t, "c1", filtered[0].ID)
	assert.Equal(t, "c3", filtered[1].ID)

	assert.Empty(t, FilterByContinent(concerts, "Africa"))
}

func TestFilterByContinentAllReturnsInputUnchanged(t *testing.T) {
	concerts := []domain.Concert{
		{ID: "c1", Continent: "Asia"},
		{ID: "c2", Continent: "Europe"},
	}

	filtered := FilterByContinent(concerts, "All")
	require.Len(t, filtered, 2)
	assert.Equal(t, concerts, filtered)
}

func TestUpcomingConcerts(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	concerts := []domain.Concert{
		{ID: "past", Date: "2026-08-01", AvailableTickets: 10},
		{ID: "soldout", Date: "2026-09-10", AvailableTickets: 0},
		{ID: "later", Date: "2026-10-01", AvailableTickets: 10},
		{ID: "sooner", Date: "2026-09-05", AvailableTickets: 10},
		{ID: "unparseable", Date: "next friday", AvailableTickets: 10},
	}

	upcoming := upcomingConcerts(concerts, now, 4)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "sooner", upcoming[0].ID)
	assert.Equal(t, "later", upcoming[1].ID)
}

func TestUpcomingConcertsLimit(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	concerts := make([]domain.Concert, 0, 6)
	for i := 0; i < 6; i++ {
		concerts = append(concerts, domain.Concert{
			ID:               fmt.Sprintf("c%d", i),
			Date:             fmt.Sprintf("2026-09-%02d", 10+i),
			AvailableTickets: 1,
		})
	}

	assert.Len(t, upcomingConcerts(concerts, now, 4), 4)
}

func TestCatalogServiceDashboard(t *testing.T) {
	artists := &stubArtistRepo{}
	for i := 0; i < 8; i++ {
		artists.artists = append(artists.artists, domain.Artist{ID: fmt.Sprintf("a%d", i)})
	}

	concerts := &stubConcertRepo{concerts: []domain.Concert{
		{ID: "c1", Date: "2099-01-01", AvailableTickets: 5},
	}}

	favorites := &stubFavoriteRepo{favorites: []domain.Favorite{
		{ID: "f1", UserID: "u1", ArtistID: "a1"},
	}}

	purchases := &stubPurchaseRepo{records: []domain.PurchaseRecord{
		{ID: "p1", UserID: "u1", PurchaseDate: "2026-08-01T10:00:00Z"},
		{ID: "p2", UserID: "u1", PurchaseDate: "2026-08-04T10:00:00Z"},
		{ID: "p3", UserID: "u1", PurchaseDate: "2026-08-02T10:00:00Z"},
		{ID: "p4", UserID: "u1", PurchaseDate: "2026-08-03T10:00:00Z"},
	}}

	svc := NewCatalogService(artists, concerts, favorites, purchases)

	dashboard, err := svc.Dashboard(context.Background(), authedSession())
	require.NoError(t, err)

	// The artist catalog is capped, favorites are the user's own, and the
	// recent purchases are the newest three.
	assert.Len(t, dashboard.Artists, 6)
	assert.Len(t, dashboard.Favorites, 1)
	assert.Len(t, dashboard.UpcomingConcerts, 1)
	require.Len(t, dashboard.RecentPurchases, 3)
	assert.Equal(t, "p2", dashboard.RecentPurchases[0].ID)
	assert.Equal(t, "p4", dashboard.RecentPurchases[1].ID)
	assert.Equal(t, "p3", dashboard.RecentPurchases[2].ID)
}

func TestCatalogServiceDashboardUnauthenticated(t *testing.T) {
	svc := NewCatalogService(&stubArtistRepo{}, &stubConcertRepo{}, &stubFavoriteRepo{}, &stubPurchaseRepo{})

	_, err := svc.Dashboard(context.Background(), domain.Session{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCatalogServiceGetConcert(t *testing.T) {
	concerts := &stubConcertRepo{concerts: []domain.Concert{{ID: "c1", Name: "Eras Night"}}}
	svc := NewCatalogService(&stubArtistRepo{}, concerts, &stubFavoriteRepo{}, &stubPurchaseRepo{})

	concert, err := svc.GetConcert(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Eras Night", concert.Name)

	_, err = svc.GetConcert(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrConcertNotFound)
}
