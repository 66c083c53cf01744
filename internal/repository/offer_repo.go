// internal/repository/offer_repo.go
package repository

import (
	"context"

	"wishfund/internal/domain"
)

// OfferRepository defines the interface for offer data operations.
type OfferRepository interface {
	// CreateOffer inserts a new offer and fills in its ID.
	CreateOffer(ctx context.Context, q DBExecutor, offer *domain.Offer) error
	// GetOfferByID retrieves a single offer.
	GetOfferByID(ctx context.Context, q DBExecutor, id int64) (*domain.Offer, error)
	// GetOffersByWishID retrieves a page of offers for a wish, newest first,
	// together with the total number of offers for that wish.
	GetOffersByWishID(ctx context.Context, q DBExecutor, wishID int64, limit, offset int) ([]domain.Offer, int64, error)
	// CountOffersByWishID returns how many offers exist for a wish.
	CountOffersByWishID(ctx context.Context, q DBExecutor, wishID int64) (int64, error)
}
