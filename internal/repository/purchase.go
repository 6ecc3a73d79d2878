package repository

import (
	"context"
	"fmt"

	"github.com/Keerthid-10/taylor/internal/domain"
)

type PurchaseRepository struct {
	gw Gateway
}

func NewPurchaseRepository(gw Gateway) *PurchaseRepository {
	return &PurchaseRepository{
		gw: gw,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, record domain.PurchaseRecord) (domain.PurchaseRecord, error) {
	var created domain.PurchaseRecord
	if err := r.gw.Create(ctx, purchasesCollection, record, &created); err != nil {
		return domain.PurchaseRecord{}, fmt.Errorf("r.gw.Create -> %w", err)
	}

	return created, nil
}

func (r *PurchaseRepository) FindByUserID(ctx context.Context, userID string) ([]domain.PurchaseRecord, error) {
	var records []domain.PurchaseRecord
	if err := r.gw.Query(ctx, purchasesCollection, "userId", userID, &records); err != nil {
		return nil, fmt.Errorf("r.gw.Query -> %w", err)
	}

	return records, nil
}
