package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/repository"
)

var (
	ErrConcertNotFound       = repository.ErrConcertNotFound
	ErrInsufficientInventory = errors.New("not enough tickets available")
	ErrPurchaseFailed        = errors.New("purchase could not be completed")
)

type BookingConcertRepository interface {
	FindByID(ctx context.Context, id string) (domain.Concert, error)
	UpdateAvailableTickets(ctx context.Context, id string, remaining int) (domain.Concert, error)
}

type BookingPurchaseRepository interface {
	Create(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.PurchaseRecord, error)
}

// BookingService runs the purchase workflow: validate against live
// availability, record the purchase, decrement the remaining inventory.
type BookingService struct {
	concerts  BookingConcertRepository
	purchases BookingPurchaseRepository
}

func NewBookingService(concerts BookingConcertRepository, purchases BookingPurchaseRepository) *BookingService {
	return &BookingService{
		concerts:  concerts,
		purchases: purchases,
	}
}

// Purchase buys tickets for the session user. Preconditions are checked in
// order before any write: the session must be authenticated, the concert
// must exist, and 1 <= tickets <= availableTickets.
//
// The record write and the inventory decrement are two independent calls
// against a backend with no transactions and no conditional update, so
// there is no atomicity across them: a failure between the writes leaves
// the recorded purchase standing against stale inventory, and two
// concurrent buyers can both pass the availability check. Both outcomes
// surface as ErrPurchaseFailed or oversold inventory respectively; neither
// is rolled back or retried.
func (s *BookingService) Purchase(ctx context.Context, sess domain.Session, concertID string, tickets int) (domain.PurchaseRecord, error) {
	if !sess.Authenticated() {
		return domain.PurchaseRecord{}, ErrUnauthenticated
	}

	concert, err := s.concerts.FindByID(ctx, concertID)
	if err != nil {
		if errors.Is(err, repository.ErrConcertNotFound) {
			return domain.PurchaseRecord{}, ErrConcertNotFound
		}

		return domain.PurchaseRecord{}, fmt.Errorf("s.concerts.FindByID -> %w", err)
	}

	if tickets < 1 || tickets > concert.AvailableTickets {
		return domain.PurchaseRecord{}, ErrInsufficientInventory
	}

	record := domain.PurchaseRecord{
		UserID:        sess.User.ID,
		UserName:      sess.User.UserName,
		ConcertID:     concert.ID,
		ConcertName:   concert.Name,
		ArtistName:    concert.ArtistName,
		Venue:         concert.Venue,
		Date:          concert.Date,
		TicketsBought: tickets,
		TotalPrice:    float64(tickets) * concert.Price,
		PurchaseDate:  time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.purchases.Create(ctx, record)
	if err != nil {
		zap.L().Warn("purchase record write failed",
			zap.String("concertID", concertID),
			zap.String("userID", sess.User.ID),
			zap.Error(err))

		return domain.PurchaseRecord{}, ErrPurchaseFailed
	}

	if _, err := s.concerts.UpdateAvailableTickets(ctx, concert.ID, concert.AvailableTickets-tickets); err != nil {
		// The purchase record already exists; inventory is now stale.
		zap.L().Warn("inventory decrement failed after purchase record write",
			zap.String("concertID", concertID),
			zap.String("purchaseID", created.ID),
			zap.Error(err))

		return domain.PurchaseRecord{}, ErrPurchaseFailed
	}

	return created, nil
}

// History returns the session user's purchases, newest first.
func (s *BookingService) History(ctx context.Context, sess domain.Session) ([]domain.PurchaseRecord, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthenticated
	}

	records, err := s.purchases.FindByUserID(ctx, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("s.purchases.FindByUserID -> %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PurchaseDate > records[j].PurchaseDate
	})

	return records, nil
}
