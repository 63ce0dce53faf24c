package engine

import (
	"context"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/backtest/engine/engine_v1/datasource"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/event"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/portfolio"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/strategy"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

// Status describes where an engine is in its run lifecycle.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
)

type Engine interface {
	// Initialize the engine with the given yaml configuration. An empty
	// string initializes the engine with default settings.
	Initialize(config string) error
	// Run replays the data source tick by tick against the strategy and
	// returns the run result. On abort the partial result is returned
	// together with the error that stopped the run.
	// The context can be used to cancel the backtest operation.
	Run(ctx context.Context, strat strategy.Strategy, strategyConfig strategy.Config, source datasource.Source, initial *portfolio.Portfolio) (*types.BacktestResult, error)
	// EventBus exposes the bus that run events are published on, so
	// observers can subscribe before calling Run.
	EventBus() *event.Bus
	// Status returns the lifecycle status of the most recent run.
	Status() Status
	// GetConfigSchema returns the schema of the engine configuration
	GetConfigSchema() (string, error)
}
