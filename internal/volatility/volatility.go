// Package volatility turns price and OHLC series into annualized
// volatility estimates. Every estimator is a pure function: identical
// input produces identical output, which backtest reproducibility
// depends on.
package volatility

import (
	"math"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// DefaultAnnualizationFactor assumes daily observations in a market
// that trades every day of the year.
const DefaultAnnualizationFactor = 365

// DefaultLambda is the RiskMetrics decay factor for the EWMA
// estimator.
const DefaultLambda = 0.94

// Options configure how a point-in-time variance is scaled to an
// annualized percentage.
type Options struct {
	// AnnualizationFactor is the number of observation periods per
	// year.
	AnnualizationFactor float64
}

// DefaultOptions returns Options with the default annualization
// factor.
func DefaultOptions() Options {
	return Options{AnnualizationFactor: DefaultAnnualizationFactor}
}

func (o Options) validate() error {
	if o.AnnualizationFactor <= 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter,
			"annualization factor must be positive, got %v", o.AnnualizationFactor)
	}

	return nil
}

// annualize converts a per-period standard deviation to an annualized
// percentage volatility.
func (o Options) annualize(stdDev float64) (types.IV, error) {
	return types.NewIV(stdDev * math.Sqrt(o.AnnualizationFactor) * 100)
}

// logReturns computes ln(p_i / p_{i-1}) for i = 1..n-1. Every price
// must be positive.
func logReturns(prices []float64) ([]float64, error) {
	returns := make([]float64, 0, len(prices)-1)

	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 || prices[i] <= 0 {
			return nil, errors.Newf(errors.ErrCodeInvalidPrice,
				"log return requires positive prices, got %v and %v at index %d", prices[i-1], prices[i], i)
		}

		returns = append(returns, math.Log(prices[i]/prices[i-1]))
	}

	return returns, nil
}

// sampleStdDev is the n-1 standard deviation of the series. Returns 0
// for fewer than two values.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	mean := sum / float64(len(values))

	var squared float64
	for _, v := range values {
		squared += (v - mean) * (v - mean)
	}

	return math.Sqrt(squared / float64(len(values)-1))
}
