// internal/domain/money.go
package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places stored for prices and amounts,
// matching the NUMERIC(10, 2) columns.
const MoneyScale = 2

// MaxMoney is the largest value a NUMERIC(10, 2) column can hold.
var MaxMoney = decimal.RequireFromString("99999999.99")

// IsValidMoney reports whether v is positive, has no more than MoneyScale
// decimal places and fits the storage column. A value that fails would be
// rounded or rejected by the database.
func IsValidMoney(v decimal.Decimal) bool {
	return v.IsPositive() &&
		v.Equal(v.Round(MoneyScale)) &&
		v.LessThanOrEqual(MaxMoney)
}
