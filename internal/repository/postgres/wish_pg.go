// internal/repository/postgres/wish_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"wishfund/internal/domain"
	"wishfund/internal/repository"
	"wishfund/internal/util"
)

const wishColumns = `id, owner_id, name, link, image, description, price, raised, copied, created_at, updated_at`

// WishRepository implements repository.WishRepository for PostgreSQL.
type WishRepository struct{}

// NewWishRepository creates a new WishRepository.
func NewWishRepository() repository.WishRepository {
	return &WishRepository{}
}

// CreateWish inserts a new wish into the database using the provided DBExecutor.
func (r *WishRepository) CreateWish(ctx context.Context, q repository.DBExecutor, wish *domain.Wish) error {
	query := `INSERT INTO wishes (owner_id, name, link, image, description, price, raised, copied, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		wish.OwnerID,
		wish.Name,
		wish.Link,
		wish.Image,
		wish.Description,
		wish.Price,
		wish.Raised,
		wish.Copied,
		wish.CreatedAt,
		wish.UpdatedAt,
	).Scan(&wish.ID)
	if err != nil {
		// The only foreign key is the owner.
		return translateError(err, util.ErrUserNotFound, "failed to create wish")
	}
	return nil
}

// GetWishByID retrieves a wish by its ID using the provided DBExecutor.
func (r *WishRepository) GetWishByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wish, error) {
	var wish domain.Wish
	query := `SELECT ` + wishColumns + ` FROM wishes WHERE id = $1`
	if err := q.GetContext(ctx, &wish, query, id); err != nil {
		return nil, translateError(err, util.ErrWishNotFound, fmt.Sprintf("failed to get wish by ID %d", id))
	}
	return &wish, nil
}

// GetWishForUpdate retrieves a wish with SELECT ... FOR UPDATE. Concurrent
// transactions locking the same row wait here until the holder commits or
// rolls back, or until the transaction's lock_timeout fires.
func (r *WishRepository) GetWishForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wish, error) {
	var wish domain.Wish
	query := `SELECT ` + wishColumns + ` FROM wishes WHERE id = $1 FOR UPDATE`
	if err := q.GetContext(ctx, &wish, query, id); err != nil {
		return nil, translateError(err, util.ErrWishNotFound, fmt.Sprintf("failed to lock wish %d", id))
	}
	return &wish, nil
}

// IncrementRaised adds delta to raised with a single UPDATE. The WHERE clause
// refuses to push raised past price even if the caller skipped the row lock.
func (r *WishRepository) IncrementRaised(ctx context.Context, q repository.DBExecutor, id int64, delta decimal.Decimal) error {
	query := `UPDATE wishes SET raised = raised + $1, updated_at = $2 WHERE id = $3 AND raised + $1 <= price`
	result, err := q.ExecContext(ctx, query, delta, time.Now().UTC(), id)
	if err != nil {
		return translateError(err, util.ErrWishNotFound, fmt.Sprintf("failed to increment raised for wish %d", id))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after incrementing raised for wish %d: %w", id, err)
	}
	if rowsAffected == 0 {
		// Either the wish is gone or the guard refused the increment; under
		// the row lock only the latter is possible.
		return util.ErrExceedsTarget
	}
	return nil
}

// UpdateWishPrice sets a new price for the wish.
func (r *WishRepository) UpdateWishPrice(ctx context.Context, q repository.DBExecutor, id int64, price decimal.Decimal) error {
	query := `UPDATE wishes SET price = $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, price, time.Now().UTC(), id)
	if err != nil {
		return translateError(err, util.ErrWishNotFound, fmt.Sprintf("failed to update price for wish %d", id))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating price for wish %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrWishNotFound
	}
	return nil
}
