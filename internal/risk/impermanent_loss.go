package risk

import (
	"math"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// CalculateIL returns the impermanent loss of a two-sided liquidity
// position as a percentage, for the price ratio r = current/entry:
//
//	IL = 2*sqrt(r)/(1+r) - 1
//
// The result is 0 when r = 1 and strictly negative otherwise.
func CalculateIL(entryPrice, currentPrice types.Price) float64 {
	ratio := currentPrice.Value() / entryPrice.Value()

	return ilForRatio(ratio)
}

// CalculateILForPriceChange is CalculateIL parameterized by a
// percentage price change, r = 1 + change/100. A change at or below
// -100% has no defined ratio and fails validation.
func CalculateILForPriceChange(changePct float64) (float64, error) {
	ratio := 1 + changePct/100
	if ratio <= 0 {
		return 0, errors.Newf(errors.ErrCodeRiskCalculation,
			"price change must be above -100%%, got %v", changePct)
	}

	return ilForRatio(ratio), nil
}

// ApplyIL scales a value by the given impermanent loss percentage.
func ApplyIL(originalValue, ilPct float64) float64 {
	return originalValue * (1 + ilPct/100)
}

func ilForRatio(ratio float64) float64 {
	return (2*math.Sqrt(ratio)/(1+ratio) - 1) * 100
}
