package volatility

import (
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// Historical computes the annualized historical volatility of a price
// series from the sample standard deviation of its log returns. A
// series with fewer than two prices has no returns and yields zero.
func Historical(prices []float64, opts Options) (types.IV, error) {
	if err := opts.validate(); err != nil {
		return types.IV{}, err
	}

	if len(prices) < 2 {
		return types.NewIV(0)
	}

	returns, err := logReturns(prices)
	if err != nil {
		return types.IV{}, err
	}

	return opts.annualize(sampleStdDev(returns))
}

// Rolling computes historical volatility over a sliding window of
// windowDays prices, producing one value per input point. The initial
// windowDays points are back-filled with the first computed value;
// those early readings are not yet informative and callers should
// treat them as a warm-up bias. A series shorter than the window falls
// back to the full-series estimate at every point.
func Rolling(prices []float64, windowDays int, opts Options) ([]types.IV, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if windowDays < 2 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "window must span at least 2 days, got %d", windowDays)
	}

	if len(prices) == 0 {
		return nil, nil
	}

	if len(prices) <= windowDays {
		full, err := Historical(prices, opts)
		if err != nil {
			return nil, err
		}

		series := make([]types.IV, len(prices))
		for i := range series {
			series[i] = full
		}

		return series, nil
	}

	series := make([]types.IV, len(prices))

	for i := windowDays; i < len(prices); i++ {
		window := prices[i-windowDays : i+1]

		iv, err := Historical(window, opts)
		if err != nil {
			return nil, err
		}

		series[i] = iv
	}

	for i := 0; i < windowDays; i++ {
		series[i] = series[windowDays]
	}

	return series, nil
}
