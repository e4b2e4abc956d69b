package models

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point amount with two decimal places on the wire and in storage.
// JSON input may be a string ("1499.00") or a number (1499); output is always a
// two-decimal string.
type Money struct {
	decimal.Decimal
}

// MaxMoney is the largest amount a NUMERIC(10,2) column holds.
var MaxMoney = MustMoney("99999999.99")

// Storable reports whether m fits a NUMERIC(10,2) column without rounding.
// Negative amounts are never storable.
func (m Money) Storable() bool {
	return !m.IsNegative() && m.LessThanOrEqual(MaxMoney.Decimal) && m.Equal(m.Round(2))
}

// NewMoney parses s into Money.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// MustMoney is NewMoney for constants; it panics on malformed input.
func MustMoney(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{decimal.Zero}
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{m.Decimal.Add(o.Decimal)}
}

// Mul returns m multiplied by an integer quantity.
func (m Money) Mul(qty int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(qty)))}
}

// String renders the amount with exactly two decimals.
func (m Money) String() string {
	return m.StringFixed(2)
}

// MarshalJSON renders a quoted two-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

// Value writes the amount with exactly two decimals.
func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(2), nil
}
