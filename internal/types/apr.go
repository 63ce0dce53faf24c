package types

import (
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// APR is an annualized rate of return stored on the percentage scale
// (5.0 means 5% per year). Negative rates are allowed.
type APR struct {
	value float64
}

// NewAPR creates an APR from a percentage value.
func NewAPR(value float64) APR {
	return APR{value: value}
}

// Value returns the rate on the percentage scale.
func (a APR) Value() float64 {
	return a.value
}

// Decimal returns the rate as a decimal fraction (5% -> 0.05).
func (a APR) Decimal() float64 {
	return a.value / 100
}

// PerPeriod returns the simple per-period return for the given number
// of periods per year, as a decimal fraction.
func (a APR) PerPeriod(periodsPerYear int) (float64, error) {
	if periodsPerYear <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "periods per year must be positive, got %d", periodsPerYear)
	}

	return a.Decimal() / float64(periodsPerYear), nil
}

// Add returns a new APR with other added.
func (a APR) Add(other APR) APR {
	return APR{value: a.value + other.value}
}

// Equal reports value equality.
func (a APR) Equal(other APR) bool {
	return a.value == other.value
}
