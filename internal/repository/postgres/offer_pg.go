// internal/repository/postgres/offer_pg.go
package postgres

import (
	"context"
	"fmt"

	"wishfund/internal/domain"
	"wishfund/internal/repository"
	"wishfund/internal/util"
)

// OfferRepository implements repository.OfferRepository for PostgreSQL.
type OfferRepository struct{}

// NewOfferRepository creates a new OfferRepository.
func NewOfferRepository() repository.OfferRepository {
	return &OfferRepository{}
}

// CreateOffer inserts a new offer using the provided DBExecutor.
func (r *OfferRepository) CreateOffer(ctx context.Context, q repository.DBExecutor, offer *domain.Offer) error {
	query := `INSERT INTO offers (user_id, wish_id, amount, hidden, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id, amount, created_at`
	err := q.QueryRowContext(ctx, query,
		offer.UserID,
		offer.WishID,
		offer.Amount,
		offer.Hidden,
		offer.CreatedAt,
	).Scan(&offer.ID, &offer.Amount, &offer.CreatedAt)
	if err != nil {
		return translateError(err, util.ErrOfferNotFound, "failed to create offer")
	}
	return nil
}

// GetOfferByID retrieves a single offer.
func (r *OfferRepository) GetOfferByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Offer, error) {
	var offer domain.Offer
	query := `SELECT id, user_id, wish_id, amount, hidden, created_at FROM offers WHERE id = $1`
	if err := q.GetContext(ctx, &offer, query, id); err != nil {
		return nil, translateError(err, util.ErrOfferNotFound, fmt.Sprintf("failed to get offer by ID %d", id))
	}
	return &offer, nil
}

// GetOffersByWishID retrieves a paginated list of offers for a wish.
// It performs two queries: one for the data and one for the total count.
func (r *OfferRepository) GetOffersByWishID(ctx context.Context, q repository.DBExecutor, wishID int64, limit, offset int) ([]domain.Offer, int64, error) {
	offers := []domain.Offer{}

	query := `
		SELECT id, user_id, wish_id, amount, hidden, created_at
		FROM offers
		WHERE wish_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	if err := q.SelectContext(ctx, &offers, query, wishID, limit, offset); err != nil {
		return nil, 0, translateError(err, util.ErrOfferNotFound, fmt.Sprintf("failed to fetch offers for wish %d", wishID))
	}

	totalCount, err := r.CountOffersByWishID(ctx, q, wishID)
	if err != nil {
		return nil, 0, err
	}

	return offers, totalCount, nil
}

// CountOffersByWishID returns how many offers exist for a wish.
func (r *OfferRepository) CountOffersByWishID(ctx context.Context, q repository.DBExecutor, wishID int64) (int64, error) {
	var totalCount int64
	query := `SELECT COUNT(*) FROM offers WHERE wish_id = $1`
	if err := q.GetContext(ctx, &totalCount, query, wishID); err != nil {
		return 0, translateError(err, util.ErrOfferNotFound, fmt.Sprintf("failed to count offers for wish %d", wishID))
	}
	return totalCount, nil
}
