package volatility

import (
	"math"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// GarmanKlass estimates annualized volatility from full OHLC candles:
//
//	variance = 0.5*ln(high/low)^2 - (2*ln 2 - 1)*ln(close/open)^2
//
// clamped at zero before the square root, averaged over the candles.
// An empty series yields zero. Every candle must have a positive low
// and a positive open.
func GarmanKlass(candles []types.Candle, opts Options) (types.IV, error) {
	if err := opts.validate(); err != nil {
		return types.IV{}, err
	}

	if len(candles) == 0 {
		return types.NewIV(0)
	}

	var sum float64

	for i, candle := range candles {
		if candle.Low <= 0 || candle.Open <= 0 {
			return types.IV{}, errors.Newf(errors.ErrCodeInvalidPrice,
				"garman-klass requires positive low and open, got low=%v open=%v at index %d", candle.Low, candle.Open, i)
		}

		hl := math.Log(candle.High / candle.Low)
		co := math.Log(candle.Close / candle.Open)

		variance := 0.5*hl*hl - (2*math.Ln2-1)*co*co
		if variance < 0 {
			variance = 0
		}

		sum += variance
	}

	return opts.annualize(math.Sqrt(sum / float64(len(candles))))
}
