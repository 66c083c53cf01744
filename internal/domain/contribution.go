// internal/domain/contribution.go
package domain

import (
	"github.com/shopspring/decimal"

	"wishfund/internal/util"
)

// ValidateContribution decides whether contributorID may pledge amount toward
// wish as the wish stands right now. It returns nil to accept, otherwise one of
// util.ErrSelfFunding, util.ErrAlreadyFunded, util.ErrExceedsTarget or
// util.ErrInvalidAmount. The first failing check wins.
//
// It touches no storage; callers pass a snapshot, normally the row they hold
// locked.
func ValidateContribution(contributorID int64, wish Wish, amount decimal.Decimal) error {
	if contributorID == wish.OwnerID {
		return util.ErrSelfFunding
	}
	if wish.IsFullyFunded() {
		return util.ErrAlreadyFunded
	}
	if wish.Raised.Add(amount).GreaterThan(wish.Price) {
		return util.ErrExceedsTarget
	}
	if !IsValidMoney(amount) {
		return util.ErrInvalidAmount
	}
	return nil
}
