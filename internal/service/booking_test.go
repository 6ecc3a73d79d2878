package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keerthid-10/taylor/internal/domain"
)

func erasConcert() domain.Concert {
	return domain.Concert{
		ID:               "c1",
		Name:             "Eras Night",
		ArtistID:         "a1",
		ArtistName:       "Taylor Swift",
		Venue:            "Wembley Stadium",
		Date:             "2026-10-20",
		Price:            120,
		AvailableTickets: 5,
		TotalTickets:     100,
		Continent:        "Europe",
	}
}

func TestBookingServicePurchase(t *testing.T) {
	concerts := &stubConcertRepo{concerts: []domain.Concert{erasConcert()}}
	purchases := &stubPurchaseRepo{}
	svc := NewBookingService(concerts, purchases)

	record, err := svc.Purchase(context.Background(), authedSession(), "c1", 3)
	require.NoError(t, err)

	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, "Swift", record.UserName)
	assert.Equal(t, "Eras Night", record.ConcertName)
	assert.Equal(t, "Taylor Swift", record.ArtistName)
	assert.Equal(t, 3, record.TicketsBought)
	assert.Equal(t, 360.0, record.TotalPrice)
	assert.NotEmpty(t, record.PurchaseDate)

	// The record is written first, then the inventory decremented.
	require.Len(t, purchases.records, 1)
	require.Len(t, concerts.updates, 1)
	assert.Equal(t, inventoryUpdate{concertID: "c1", remaining: 2}, concerts.updates[0])
}

func TestBookingServicePurchaseUnauthenticated(t *testing.T) {
	concerts := &stubConcertRepo{concerts: []domain.Concert{erasConcert()}}
	purchases := &stubPurchaseRepo{}
	svc := NewBookingService(concerts, purchases)

	_, err := svc.Purchase(context.Background(), domain.Session{}, "c1", 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, purchases.records)
}

func TestBookingServicePurchaseConcertNotFound(t *testing.T) {
	svc := NewBookingService(&stubConcertRepo{}, &stubPurchaseRepo{})

	_, err := svc.Purchase(context.Background(), authedSession(), "missing", 1)
	assert.ErrorIs(t, err, ErrConcertNotFound)
}

func TestBookingServicePurchaseInsufficientInventory(t *testing.T) {
	tests := []struct {
		name    string
		tickets int
	}{
		{"zero", 0},
		{"negative", -1},
		{"over available", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			concerts := &stubConcertRepo{concerts: []domain.Concert{erasConcert()}}
			purchases := &stubPurchaseRepo{}
			svc := NewBookingService(concerts, purchases)

			_, err := svc.Purchase(context.Background(), authedSession(), "c1", tt.tickets)
			assert.ErrorIs(t, err, ErrInsufficientInventory)

			// No write of either kind happens on a failed precondition.
			assert.Empty(t, purchases.records)
			assert.Empty(t, concerts.updates)
		})
	}
}

func TestBookingServicePurchaseExactlyAvailable(t *testing.T) {
	concerts := &stubConcertRepo{concerts: []domain.Concert{erasConcert()}}
	svc := NewBookingService(concerts, &stubPurchaseRepo{})

	record, err := svc.Purchase(context.Background(), authedSession(), "c1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, record.TicketsBought)
	assert.Equal(t, inventoryUpdate{concertID: "c1", remaining: 0}, concerts.updates[0])
}

func TestBookingServicePurchaseRecordWriteFails(t *testing.T) {
	concerts := &stubConcertRepo{concerts: []domain.Concert{erasConcert()}}
	purchases := &stubPurchaseRepo{createErr: errors.New("boom")}
	svc := NewBookingService(concerts, purchases)

	_, err := svc.Purchase(context.Background(), authedSession(), "c1", 1)
	assert.ErrorIs(t, err, ErrPurchaseFailed)
	assert.Empty(t, concerts.updates)
}

func TestBookingServicePurchaseDecrementFails(t *testing.T) {
	concerts := &stubConcertRepo{
		concerts:  []domain.Concert{erasConcert()},
		updateErr: errors.New("boom"),
	}
	purchases := &stubPurchaseRepo{}
	svc := NewBookingService(concerts, purchases)

	_, err := svc.Purchase(context.Background(), authedSession(), "c1", 1)
	assert.ErrorIs(t, err, ErrPurchaseFailed)

	// The record write is not rolled back: the receipt stands even though
	// the inventory was never decremented.
	assert.Len(t, purchases.records, 1)
}

func TestBookingServiceHistory(t *testing.T) {
	purchases := &stubPurchaseRepo{records: []domain.PurchaseRecord{
		{ID: "p1", UserID: "u1", PurchaseDate: "2026-08-01T10:00:00Z"},
		{ID: "p2", UserID: "u2", PurchaseDate: "2026-08-02T10:00:00Z"},
		{ID: "p3", UserID: "u1", PurchaseDate: "2026-08-03T10:00:00Z"},
	}}
	svc := NewBookingService(&stubConcertRepo{}, purchases)

	records, err := svc.History(context.Background(), authedSession())
	require.NoError(t, err)

	// Only the session user's purchases, newest first.
	require.Len(t, records, 2)
	assert.Equal(t, "p3", records[0].ID)
	assert.Equal(t, "p1", records[1].ID)
}

func TestBookingServiceHistoryUnauthenticated(t *testing.T) {
	svc := NewBookingService(&stubConcertRepo{}, &stubPurchaseRepo{})

	_, err := svc.History(context.Background(), domain.Session{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
