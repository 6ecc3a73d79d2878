package repository

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keerthid-10/taylor/internal/collection"
	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/gateway"
)

// newTestGateway serves a real in-memory collection API over HTTP so the
// repositories are tested through the same wire path production uses.
func newTestGateway(t *testing.T) *gateway.Client {
	t.Helper()

	server := collection.NewServer(gin.TestMode, collection.NewMemoryStore())
	ts := httptest.NewServer(server.Router)
	t.Cleanup(ts.Close)

	return gateway.NewClient(ts.URL, time.Second)
}

func TestUserRepositoryCreateAndFindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestGateway(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.User{
		UserName: "Swift",
		Email:    "swift@example.com",
		Password: "folklore8",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.FindByEmail(ctx, "swift@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "folklore8", found.Password)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepositoryFindByEmailReturnsFirstMatch(t *testing.T) {
	repo := NewUserRepository(newTestGateway(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.User{UserName: "Swift", Email: "dup@example.com", Password: "one"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.User{UserName: "Swift", Email: "dup@example.com", Password: "two"})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestArtistRepository(t *testing.T) {
	gw := newTestGateway(t)
	repo := NewArtistRepository(gw)
	ctx := context.Background()

	require.NoError(t, gw.Create(ctx, "artists", domain.Artist{ID: "a1", Name: "Taylor Swift"}, nil))
	require.NoError(t, gw.Create(ctx, "artists", domain.Artist{ID: "a2", Name: "Coldplay"}, nil))

	artists, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 2)

	artist, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Taylor Swift", artist.Name)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestConcertRepositoryUpdateAvailableTickets(t *testing.T) {
	gw := newTestGateway(t)
	repo := NewConcertRepository(gw)
	ctx := context.Background()

	require.NoError(t, gw.Create(ctx, "concerts", domain.Concert{
		ID:               "c1",
		Name:             "Eras Night",
		AvailableTickets: 50,
		TotalTickets:     100,
	}, nil))

	updated, err := repo.UpdateAvailableTickets(ctx, "c1", 47)
	require.NoError(t, err)
	assert.Equal(t, 47, updated.AvailableTickets)

	// The patch leaves every other field alone.
	assert.Equal(t, "Eras Night", updated.Name)
	assert.Equal(t, 100, updated.TotalTickets)

	_, err = repo.UpdateAvailableTickets(ctx, "missing", 1)
	assert.ErrorIs(t, err, ErrConcertNotFound)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrConcertNotFound)
}

func TestFavoriteRepository(t *testing.T) {
	repo := NewFavoriteRepository(newTestGateway(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Favorite{UserID: "u1", ArtistID: "a1", ArtistName: "Taylor Swift"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, domain.Favorite{UserID: "u2", ArtistID: "a1"})
	require.NoError(t, err)

	mine, err := repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrFavoriteNotFound)
}

func TestPurchaseRepository(t *testing.T) {
	repo := NewPurchaseRepository(newTestGateway(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.PurchaseRecord{
		UserID:        "u1",
		ConcertID:     "c1",
		TicketsBought: 2,
		TotalPrice:    240,
		PurchaseDate:  "2026-08-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, domain.PurchaseRecord{UserID: "u2", ConcertID: "c1"})
	require.NoError(t, err)

	records, err := repo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 240.0, records[0].TotalPrice)
}
