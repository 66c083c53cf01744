// internal/domain/wish.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Wish is a published item with a funding target.
type Wish struct {
	ID          int64           `db:"id" json:"id"`
	OwnerID     int64           `db:"owner_id" json:"ownerId"` // Immutable after creation
	Name        string          `db:"name" json:"name"`
	Link        string          `db:"link" json:"link"`
	Image       string          `db:"image" json:"image"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`   // Funding goal, NUMERIC(10, 2) in DB
	Raised      decimal.Decimal `db:"raised" json:"raised"` // Running total of accepted offers, never recomputed on read
	Copied      int64           `db:"copied" json:"copied"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// NewWish creates a new Wish instance with nothing raised yet.
func NewWish(ownerID int64, name, link, image, description string, price decimal.Decimal) *Wish {
	now := time.Now().UTC()
	return &Wish{
		OwnerID:     ownerID,
		Name:        name,
		Link:        link,
		Image:       image,
		Description: description,
		Price:       price,
		Raised:      decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Remaining is the amount still needed to reach the price.
func (w *Wish) Remaining() decimal.Decimal {
	return w.Price.Sub(w.Raised)
}

// IsFullyFunded reports whether raised has reached the price.
func (w *Wish) IsFullyFunded() bool {
	return w.Raised.Equal(w.Price)
}
