package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PerformanceMetrics are the aggregate metrics of a completed run.
type PerformanceMetrics struct {
	// TotalReturn is the percentage change from the first to the last
	// recorded portfolio value.
	TotalReturn float64 `yaml:"total_return" json:"total_return"`
	// SharpeRatio is the annualized mean-over-stddev of per-tick
	// returns. Zero when the return series has no variance.
	SharpeRatio float64 `yaml:"sharpe_ratio" json:"sharpe_ratio"`
	// MaxDrawdown is the largest peak-to-trough decline, in percent.
	MaxDrawdown float64 `yaml:"max_drawdown" json:"max_drawdown"`
	// FinalValue is the last recorded portfolio value.
	FinalValue float64 `yaml:"final_value" json:"final_value"`
}

// BacktestResult is the output of a run. HistoricalValues and
// HistoricalReturns are parallel sequences with one entry per
// processed tick. On an aborted run the result carries everything up
// to the last completed tick.
type BacktestResult struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// StrategyID identifies the strategy that produced this result.
	StrategyID string `yaml:"strategy_id" json:"strategy_id"`
	// Metrics are the aggregate performance metrics.
	Metrics PerformanceMetrics `yaml:"metrics" json:"metrics"`
	// Trades is the ordered sequence of executed trades.
	Trades []Trade `yaml:"trades" json:"trades"`
	// Positions is the final open-position snapshot.
	Positions []Position `yaml:"positions" json:"positions"`
	// HistoricalValues is the portfolio value after each tick.
	HistoricalValues []float64 `yaml:"historical_values" json:"historical_values"`
	// HistoricalReturns is the tick-over-tick percentage change of the
	// portfolio value.
	HistoricalReturns []float64 `yaml:"historical_returns" json:"historical_returns"`
	// ProcessedTicks is the number of completed ticks.
	ProcessedTicks int `yaml:"processed_ticks" json:"processed_ticks"`
	// Aborted is true when the run ended before the stream was
	// exhausted.
	Aborted bool `yaml:"aborted" json:"aborted"`
	// AbortedAtTick is the index of the tick the run stopped at.
	// Meaningless when Aborted is false.
	AbortedAtTick int `yaml:"aborted_at_tick" json:"aborted_at_tick"`
	// AbortReason is the cause of the abort, empty otherwise.
	AbortReason string `yaml:"abort_reason" json:"abort_reason"`
}

// WriteBacktestResult writes a backtest result to a YAML file.
func WriteBacktestResult(path string, result BacktestResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal backtest result to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backtest result to file: %w", err)
	}

	return nil
}
