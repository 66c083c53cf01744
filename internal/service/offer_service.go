// internal/service/offer_service.go
package service

import (
	"context"
	"fmt"

	"wishfund/internal/domain"
	"wishfund/internal/repository"
	"wishfund/internal/util"
)

// OfferService exposes read access to offers.
type OfferService interface {
	GetOffer(ctx context.Context, offerID, viewerID int64) (*domain.Offer, error)
	ListWishOffers(ctx context.Context, wishID, viewerID int64, limit, offset int) ([]domain.Offer, int64, error)
}

type offerService struct {
	dbExecutor repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	wishRepo   repository.WishRepository
	offerRepo  repository.OfferRepository
}

// NewOfferService creates a new instance of OfferService.
func NewOfferService(dbExecutor repository.DBExecutor, wishRepo repository.WishRepository, offerRepo repository.OfferRepository) OfferService {
	return &offerService{
		dbExecutor: dbExecutor,
		wishRepo:   wishRepo,
		offerRepo:  offerRepo,
	}
}

// GetOffer retrieves a single offer as viewerID may see it.
func (s *offerService) GetOffer(ctx context.Context, offerID, viewerID int64) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetOfferByID(ctx, s.dbExecutor, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}
	visible := offer.VisibleTo(viewerID)
	return &visible, nil
}

// ListWishOffers retrieves a page of offers for a wish, newest first.
func (s *offerService) ListWishOffers(ctx context.Context, wishID, viewerID int64, limit, offset int) ([]domain.Offer, int64, error) {
	// First, check if the wish exists so an unknown wish is a 404, not an empty page.
	if _, err := s.wishRepo.GetWishByID(ctx, s.dbExecutor, wishID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, 0, util.ErrWishNotFound
		}
		return nil, 0, fmt.Errorf("list offers: failed to check wish existence: %w", err)
	}

	offers, totalCount, err := s.offerRepo.GetOffersByWishID(ctx, s.dbExecutor, wishID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list offers: failed to retrieve offers: %w", err)
	}

	for i := range offers {
		offers[i] = offers[i].VisibleTo(viewerID)
	}
	return offers, totalCount, nil
}
