package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/gateway"
)

var ErrConcertNotFound = errors.New("concert not found")

type ConcertRepository struct {
	gw Gateway
}

func NewConcertRepository(gw Gateway) *ConcertRepository {
	return &ConcertRepository{
		gw: gw,
	}
}

func (r *ConcertRepository) FindAll(ctx context.Context) ([]domain.Concert, error) {
	var concerts []domain.Concert
	if err := r.gw.List(ctx, concertsCollection, &concerts); err != nil {
		return nil, fmt.Errorf("r.gw.List -> %w", err)
	}

	return concerts, nil
}

func (r *ConcertRepository) FindByID(ctx context.Context, id string) (domain.Concert, error) {
	var concert domain.Concert
	if err := r.gw.Get(ctx, concertsCollection, id, &concert); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return domain.Concert{}, ErrConcertNotFound
		}

		return domain.Concert{}, fmt.Errorf("r.gw.Get -> %w", err)
	}

	return concert, nil
}

// UpdateAvailableTickets patches only the availableTickets field, leaving
// the rest of the record untouched.
func (r *ConcertRepository) UpdateAvailableTickets(ctx context.Context, id string, remaining int) (domain.Concert, error) {
	var updated domain.Concert
	partial := map[string]any{"availableTickets": remaining}
	if err := r.gw.Patch(ctx, concertsCollection, id, partial, &updated); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return domain.Concert{}, ErrConcertNotFound
		}

		return domain.Concert{}, fmt.Errorf("r.gw.Patch -> %w", err)
	}

	return updated, nil
}
