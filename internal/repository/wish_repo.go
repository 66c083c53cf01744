// internal/repository/wish_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"wishfund/internal/domain"
)

// WishRepository defines the interface for wish data operations.
type WishRepository interface {
	// CreateWish adds a new wish to the database.
	CreateWish(ctx context.Context, q DBExecutor, wish *domain.Wish) error
	// GetWishByID retrieves a wish by its ID without locking it.
	GetWishByID(ctx context.Context, q DBExecutor, id int64) (*domain.Wish, error)
	// GetWishForUpdate retrieves a wish and takes an exclusive row lock on it
	// that is held until q's transaction ends. q must be a transaction.
	GetWishForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.Wish, error)
	// IncrementRaised adds delta to the wish's raised total in place.
	IncrementRaised(ctx context.Context, q DBExecutor, id int64, delta decimal.Decimal) error
	// UpdateWishPrice sets a new funding goal.
	UpdateWishPrice(ctx context.Context, q DBExecutor, id int64, price decimal.Decimal) error
}
