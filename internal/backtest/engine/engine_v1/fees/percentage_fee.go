package fees

import (
	"math"

	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// PercentageFee charges a flat fraction of the trade's notional value.
type PercentageFee struct {
	rate float64
}

func NewPercentageFee(rate float64) (*PercentageFee, error) {
	if rate < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "fee rate must not be negative, got %f", rate)
	}

	return &PercentageFee{
		rate: rate,
	}, nil
}

func (f *PercentageFee) Calculate(quantity float64, price float64) float64 {
	return math.Abs(quantity*price) * f.rate
}
