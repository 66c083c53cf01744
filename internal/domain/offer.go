// internal/domain/offer.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is an immutable record of one user's pledge toward a wish.
type Offer struct {
	ID        int64           `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"userId"`
	WishID    int64           `db:"wish_id" json:"wishId"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Hidden    bool            `db:"hidden" json:"hidden"` // Display only, no effect on funding
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// NewOffer creates a new Offer instance.
func NewOffer(userID, wishID int64, amount decimal.Decimal, hidden bool) *Offer {
	return &Offer{
		UserID:    userID,
		WishID:    wishID,
		Amount:    amount,
		Hidden:    hidden,
		CreatedAt: time.Now().UTC(),
	}
}

// VisibleTo returns the offer as the given viewer may see it. The contributor
// of a hidden offer is masked for everyone but the contributor.
func (o Offer) VisibleTo(viewerID int64) Offer {
	if o.Hidden && o.UserID != viewerID {
		o.UserID = 0
	}
	return o
}
