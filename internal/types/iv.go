package types

import (
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// VolatilityLevel classifies an IV reading.
type VolatilityLevel string

const (
	VolatilityLevelLow  VolatilityLevel = "LOW"
	VolatilityLevelMid  VolatilityLevel = "MID"
	VolatilityLevelHigh VolatilityLevel = "HIGH"
)

// IVThresholds are the classification boundaries on the percentage
// scale. An IV below Low is LOW, at or above High is HIGH, MID between.
type IVThresholds struct {
	Low  float64
	High float64
}

// DefaultIVThresholds suit annualized crypto volatility, where 30% is
// calm and 80% is a stressed market.
func DefaultIVThresholds() IVThresholds {
	return IVThresholds{Low: 30, High: 80}
}

// IV is an implied or realized volatility on the percentage scale.
// Valid range is [0, 1000]; out-of-range values fail construction
// rather than being clamped.
type IV struct {
	value float64
}

// NewIV creates an IV, failing with a validation error outside [0, 1000].
func NewIV(value float64) (IV, error) {
	if value < 0 || value > 1000 {
		return IV{}, errors.Newf(errors.ErrCodeInvalidVolatility, "iv must be within [0, 1000], got %v", value)
	}

	return IV{value: value}, nil
}

// MustIV creates an IV and panics on an out-of-range value. Only for
// literals known to be valid, e.g. in tests.
func MustIV(value float64) IV {
	iv, err := NewIV(value)
	if err != nil {
		panic(err)
	}

	return iv
}

// Value returns the volatility on the percentage scale.
func (v IV) Value() float64 {
	return v.value
}

// Level classifies the volatility against the given thresholds.
func (v IV) Level(thresholds IVThresholds) VolatilityLevel {
	switch {
	case v.value < thresholds.Low:
		return VolatilityLevelLow
	case v.value >= thresholds.High:
		return VolatilityLevelHigh
	default:
		return VolatilityLevelMid
	}
}

// Equal reports value equality.
func (v IV) Equal(other IV) bool {
	return v.value == other.value
}
