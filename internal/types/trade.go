package types

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// Trade is an immutable transaction record. It is created by a
// strategy's execution result (or by the engine on rebalance) and is
// never modified afterwards.
type Trade struct {
	ID         string    `yaml:"id" json:"id" validate:"required"`
	StrategyID string    `yaml:"strategy_id" json:"strategy_id" validate:"required"`
	Asset      string    `yaml:"asset" json:"asset" validate:"required"`
	Side       TradeSide `yaml:"side" json:"side" validate:"required,oneof=BUY SELL"`
	Amount     float64   `yaml:"amount" json:"amount" validate:"required,gt=0"`
	Price      float64   `yaml:"price" json:"price" validate:"required,gt=0"`
	Timestamp  time.Time `yaml:"timestamp" json:"timestamp" validate:"required"`
	Fees       float64   `yaml:"fees" json:"fees" validate:"gte=0"`
	Slippage   float64   `yaml:"slippage" json:"slippage" validate:"gte=0"`
}

// Value is the notional value of the trade.
func (t *Trade) Value() float64 {
	return t.Amount * t.Price
}

// TotalCost is the notional value plus fees and slippage.
func (t *Trade) TotalCost() float64 {
	return t.Value() + t.Fees + t.Slippage
}

// Validate validates the Trade record.
func (t *Trade) Validate() error {
	validate := validator.New()
	if err := validate.Struct(t); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTrade, "invalid trade", err)
	}

	return nil
}
