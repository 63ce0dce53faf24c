package fees

import (
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

type FeeModel interface {
	// Calculate the trading fee in USD for a fill of the given size.
	Calculate(quantity float64, price float64) float64
}

type Model string

const (
	ModelZero       Model = "zero"
	ModelPercentage Model = "percentage"
)

var AllModels = []any{
	ModelZero,
	ModelPercentage,
}

// GetFeeModel resolves a fee model by name. An empty name maps to the
// zero model so minimal configs stay valid.
func GetFeeModel(model Model, rate float64) (FeeModel, error) {
	switch model {
	case ModelZero, "":
		return NewZeroFee(), nil
	case ModelPercentage:
		return NewPercentageFee(rate)
	default:
		return nil, errors.Newf(errors.ErrCodeUnknownFeeModel, "unknown fee model: %s", model)
	}
}
