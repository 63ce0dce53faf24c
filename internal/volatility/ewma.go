package volatility

import (
	"math"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// EWMA computes an exponentially weighted moving-average volatility
// series, one value per input point. The variance recursion is
//
//	var_i = lambda*var_{i-1} + (1-lambda)*r_i^2
//
// seeded at zero, with r_i the log return at point i. The leading
// point has no return, so it is back-filled with the second point's
// value.
func EWMA(prices []float64, lambda float64, opts Options) ([]types.IV, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if lambda <= 0 || lambda >= 1 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "lambda must be within (0, 1), got %v", lambda)
	}

	if len(prices) == 0 {
		return nil, nil
	}

	series := make([]types.IV, len(prices))

	if len(prices) == 1 {
		zero, err := types.NewIV(0)
		if err != nil {
			return nil, err
		}

		series[0] = zero

		return series, nil
	}

	returns, err := logReturns(prices)
	if err != nil {
		return nil, err
	}

	variance := 0.0

	for i, r := range returns {
		variance = lambda*variance + (1-lambda)*r*r

		iv, err := opts.annualize(math.Sqrt(variance))
		if err != nil {
			return nil, err
		}

		series[i+1] = iv
	}

	series[0] = series[1]

	return series, nil
}
