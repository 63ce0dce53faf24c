package types

import (
	"github.com/shopspring/decimal"
)

// Amount is a quantity of an asset or cash. It is backed by a decimal
// so that repeated add/subtract cycles stay exact across thousands of
// simulation steps. Amounts may be negative (e.g. a cash delta);
// callers that require non-negativity check it at the aggregate level.
type Amount struct {
	value decimal.Decimal
}

// NewAmount creates an Amount from a float scalar.
func NewAmount(value float64) Amount {
	return Amount{value: decimal.NewFromFloat(value)}
}

// NewAmountFromDecimal creates an Amount from a decimal.
func NewAmountFromDecimal(value decimal.Decimal) Amount {
	return Amount{value: value}
}

// ZeroAmount returns the additive identity.
func ZeroAmount() Amount {
	return Amount{value: decimal.Zero}
}

// Value returns the underlying scalar as a float.
func (a Amount) Value() float64 {
	value, _ := a.value.Float64()

	return value
}

// Decimal returns the underlying decimal.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Add returns a new Amount with other added.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Sub returns a new Amount with other subtracted.
func (a Amount) Sub(other Amount) Amount {
	return Amount{value: a.value.Sub(other.value)}
}

// MulFloat returns a new Amount scaled by factor.
func (a Amount) MulFloat(factor float64) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromFloat(factor))}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// Equal reports value equality.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}
