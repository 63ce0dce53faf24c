package engine

import (
	"math"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

// ComputeMetrics derives run performance from the per-tick portfolio
// value and return series. Both slices are parallel, one entry per
// processed tick.
func ComputeMetrics(values []float64, returns []float64, periodsPerYear int) types.PerformanceMetrics {
	metrics := types.PerformanceMetrics{
		TotalReturn: 0,
		SharpeRatio: 0,
		MaxDrawdown: 0,
		FinalValue:  0,
	}

	if len(values) == 0 {
		return metrics
	}

	metrics.FinalValue = values[len(values)-1]
	if values[0] != 0 {
		metrics.TotalReturn = (metrics.FinalValue - values[0]) / values[0] * 100
	}

	metrics.MaxDrawdown = maxDrawdown(values)
	metrics.SharpeRatio = sharpeRatio(returns, periodsPerYear)

	return metrics
}

// maxDrawdown is the largest percentage drop from any running peak.
func maxDrawdown(values []float64) float64 {
	peak := values[0]
	worst := 0.0

	for _, value := range values {
		if value > peak {
			peak = value
		}

		if peak <= 0 {
			continue
		}

		drawdown := (peak - value) / peak * 100
		if drawdown > worst {
			worst = drawdown
		}
	}

	return worst
}

// sharpeRatio annualizes the mean per-period return over its sample
// standard deviation. A flat return series scores zero rather than
// dividing by zero.
func sharpeRatio(returns []float64, periodsPerYear int) float64 {
	if len(returns) < 2 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		diff := r - mean
		variance += diff * diff
	}
	variance /= float64(len(returns) - 1)

	stdDev := math.Sqrt(variance)
	if stdDev == 0 {
		return 0
	}

	return mean / stdDev * math.Sqrt(float64(periodsPerYear))
}
