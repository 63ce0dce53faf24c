package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

type PositionSide string

const (
	PositionSideLong  PositionSide = "LONG"
	PositionSideShort PositionSide = "SHORT"
)

// Position is a strategy's open holding. It is owned exclusively by
// the portfolio that holds it; only the engine mutates CurrentPrice,
// via SetCurrentPrice, as ticks arrive.
type Position struct {
	ID           string       `yaml:"id" json:"id" validate:"required"`
	StrategyID   string       `yaml:"strategy_id" json:"strategy_id" validate:"required"`
	Asset        string       `yaml:"asset" json:"asset" validate:"required"`
	Side         PositionSide `yaml:"side" json:"side" validate:"required,oneof=LONG SHORT"`
	Amount       float64      `yaml:"amount" json:"amount" validate:"required,gt=0"`
	EntryPrice   float64      `yaml:"entry_price" json:"entry_price" validate:"required,gt=0"`
	CurrentPrice float64      `yaml:"current_price" json:"current_price" validate:"required,gt=0"`
	// Leverage is 1 for spot holdings.
	Leverage float64 `yaml:"leverage" json:"leverage" validate:"gte=0"`
	// Margin is the collateral backing a leveraged position, in quote
	// currency. Zero for spot holdings.
	Margin float64 `yaml:"margin" json:"margin" validate:"gte=0"`
	// Exchange is the venue holding the position. Informational.
	Exchange string `yaml:"exchange" json:"exchange"`
	// LiquidationPrice is exchange-supplied. None means the venue did
	// not report one; risk calculations treat the position as
	// maximally safe.
	LiquidationPrice optional.Option[float64] `yaml:"liquidation_price" json:"liquidation_price"`
	OpenedAt         time.Time                `yaml:"opened_at" json:"opened_at"`
}

// MarketValue is the position value at the current mark price.
func (p *Position) MarketValue() float64 {
	return p.Amount * p.CurrentPrice
}

// UnrealizedPnL is the profit or loss against the entry price. Short
// positions profit when the price falls.
func (p *Position) UnrealizedPnL() PnL {
	amount := decimal.NewFromFloat(p.Amount)
	entry := decimal.NewFromFloat(p.EntryPrice)
	current := decimal.NewFromFloat(p.CurrentPrice)

	diff := current.Sub(entry)
	if p.Side == PositionSideShort {
		diff = entry.Sub(current)
	}

	return NewPnLFromDecimal(diff.Mul(amount))
}

// SetCurrentPrice updates the mark price. Engine-driven; a
// non-positive price is a validation error.
func (p *Position) SetCurrentPrice(price float64) error {
	if price <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPrice, "mark price must be positive, got %v", price)
	}

	p.CurrentPrice = price

	return nil
}

// Validate validates the Position record.
func (p *Position) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPosition, "invalid position", err)
	}

	return nil
}
