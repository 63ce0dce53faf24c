package volatility

import (
	"math"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// Parkinson estimates annualized volatility from high/low ranges:
//
//	variance = ln(high/low)^2 / (4*ln 2)
//
// averaged over the candles. An empty series yields zero. Every candle
// must have a positive low.
func Parkinson(candles []types.Candle, opts Options) (types.IV, error) {
	if err := opts.validate(); err != nil {
		return types.IV{}, err
	}

	if len(candles) == 0 {
		return types.NewIV(0)
	}

	var sum float64

	for i, candle := range candles {
		if candle.Low <= 0 {
			return types.IV{}, errors.Newf(errors.ErrCodeInvalidPrice,
				"parkinson requires positive low, got %v at index %d", candle.Low, i)
		}

		hl := math.Log(candle.High / candle.Low)
		sum += hl * hl / (4 * math.Ln2)
	}

	return opts.annualize(math.Sqrt(sum / float64(len(candles))))
}
