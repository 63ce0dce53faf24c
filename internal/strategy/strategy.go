// Package strategy defines the contract the backtest engine consumes.
// Concrete strategies live outside the core; the engine only ever
// holds this interface.
package strategy

import (
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

// PortfolioReader is the read-only view of the portfolio a strategy
// receives. Mutation happens exclusively in the engine, by applying
// the strategy's Result.
type PortfolioReader interface {
	// ID returns the portfolio identifier.
	ID() string
	// Cash returns the current cash balance.
	Cash() types.Amount
	// Position returns the position with the given id.
	Position(id string) (*types.Position, bool)
	// Positions returns all open positions in insertion order.
	Positions() []*types.Position
	// PositionCount returns the number of open positions.
	PositionCount() int
	// TotalValue is cash plus the market value of every open position.
	TotalValue() float64
	// TotalPnL is the summed unrealized PnL of every open position.
	TotalPnL() types.PnL
}

// Result is what a strategy execution returns. The engine applies it:
// trades settle against cash, positions are upserted, closed position
// ids are removed, and a rebalance signal becomes an event.
type Result struct {
	// Trades to execute, in order.
	Trades []types.Trade
	// Positions to add or replace, keyed by their ID.
	Positions []types.Position
	// ClosedPositionIDs are removed from the portfolio.
	ClosedPositionIDs []string
	// ShouldRebalance signals that portfolio composition must change.
	ShouldRebalance bool
	// RebalanceReason explains the signal. Required when
	// ShouldRebalance is set.
	RebalanceReason string
}

// Strategy is the polymorphic contract each concrete strategy
// implements.
type Strategy interface {
	// Name returns the human-readable strategy name.
	Name() string
	// Execute is the sole state-changing entry point. It inspects the
	// portfolio and the current tick and returns the mutations to
	// apply; it must not mutate the portfolio itself.
	Execute(portfolio PortfolioReader, data types.MarketData, config Config) (Result, error)
	// CalculateExpectedYield is a pure projection of the strategy's
	// annualized yield under the given market conditions.
	CalculateExpectedYield(config Config, data types.MarketData) (types.APR, error)
	// ValidateConfig reports whether the config is usable. The engine
	// calls it before the first Execute and refuses to run on false.
	ValidateConfig(config Config) bool
}
