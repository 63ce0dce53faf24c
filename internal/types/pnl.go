package types

import (
	"github.com/shopspring/decimal"
)

// PnL is a signed profit-and-loss scalar in quote currency. Backed by
// a decimal so that summing per-position PnL over a portfolio stays
// exact.
type PnL struct {
	value decimal.Decimal
}

// NewPnL creates a PnL from a float scalar.
func NewPnL(value float64) PnL {
	return PnL{value: decimal.NewFromFloat(value)}
}

// NewPnLFromDecimal creates a PnL from a decimal.
func NewPnLFromDecimal(value decimal.Decimal) PnL {
	return PnL{value: value}
}

// ZeroPnL returns the additive identity.
func ZeroPnL() PnL {
	return PnL{value: decimal.Zero}
}

// Value returns the underlying scalar as a float.
func (p PnL) Value() float64 {
	value, _ := p.value.Float64()

	return value
}

// Decimal returns the underlying decimal.
func (p PnL) Decimal() decimal.Decimal {
	return p.value
}

// Add returns a new PnL with other added.
func (p PnL) Add(other PnL) PnL {
	return PnL{value: p.value.Add(other.value)}
}

// IsPositive reports a profit.
func (p PnL) IsPositive() bool {
	return p.value.IsPositive()
}

// IsNegative reports a loss.
func (p PnL) IsNegative() bool {
	return p.value.IsNegative()
}

// IsZero reports a flat result.
func (p PnL) IsZero() bool {
	return p.value.IsZero()
}

// Equal reports value equality.
func (p PnL) Equal(other PnL) bool {
	return p.value.Equal(other.value)
}
