package types

import (
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// Price is a strictly positive asset price. Instances are immutable;
// every arithmetic operation returns a new instance and re-validates
// the positivity invariant.
type Price struct {
	value float64
}

// NewPrice creates a Price, failing with a validation error for any
// non-positive value.
func NewPrice(value float64) (Price, error) {
	if value <= 0 {
		return Price{}, errors.Newf(errors.ErrCodeInvalidPrice, "price must be positive, got %v", value)
	}

	return Price{value: value}, nil
}

// MustPrice creates a Price and panics on a non-positive value. Only
// for literals known to be valid, e.g. in tests.
func MustPrice(value float64) Price {
	price, err := NewPrice(value)
	if err != nil {
		panic(err)
	}

	return price
}

// Value returns the underlying scalar.
func (p Price) Value() float64 {
	return p.value
}

// Mul returns a new Price scaled by factor.
func (p Price) Mul(factor float64) (Price, error) {
	return NewPrice(p.value * factor)
}

// Div returns a new Price divided by divisor. Division by zero is a
// validation error, not an Inf.
func (p Price) Div(divisor float64) (Price, error) {
	if divisor == 0 {
		return Price{}, errors.New(errors.ErrCodeDivisionByZero, "price division by zero")
	}

	return NewPrice(p.value / divisor)
}

// PercentageChange returns the percentage change from the given price
// to this price.
func (p Price) PercentageChange(from Price) float64 {
	return (p.value - from.value) / from.value * 100
}

// Equal reports value equality.
func (p Price) Equal(other Price) bool {
	return p.value == other.value
}
