package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/backtest/engine"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/backtest/engine/engine_v1/datasource"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/backtest/engine/engine_v1/fees"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/event"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/idgen"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/logger"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/portfolio"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/risk"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/strategy"
	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

const riskLimitLiquidationProximity = "liquidation_proximity"

type BacktestEngineV1 struct {
	config   BacktestEngineV1Config
	log      *logger.Logger
	bus      *event.Bus
	ids      idgen.Source
	feeModel fees.FeeModel
	status   engine.Status
}

func NewBacktestEngineV1() engine.Engine {
	return &BacktestEngineV1{
		config:   DefaultConfig(),
		log:      nil,
		bus:      event.NewBus(),
		ids:      idgen.NewMonotonicSource(),
		feeModel: nil,
		status:   engine.StatusIdle,
	}
}

// Initialize implements engine.Engine.
func (b *BacktestEngineV1) Initialize(config string) error {
	cfg := DefaultConfig()

	if strings.TrimSpace(config) != "" {
		if err := yaml.Unmarshal([]byte(config), &cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidEngineConfig, "failed to parse engine configuration", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	feeModel, err := fees.GetFeeModel(cfg.FeeModel, cfg.FeeRate)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidEngineConfig, "invalid engine configuration", err)
	}

	log, loggerErr := logger.NewLogger()
	if loggerErr != nil {
		return loggerErr
	}

	b.config = cfg
	b.feeModel = feeModel
	b.log = log
	b.status = engine.StatusIdle

	b.log.Debug("Backtest engine initialized",
		zap.String("config", config),
	)

	return nil
}

// SetIDSource replaces the id source used for run, trade and event
// identifiers. Injecting a monotonic source makes runs reproducible.
func (b *BacktestEngineV1) SetIDSource(source idgen.Source) {
	b.ids = source
}

// EventBus implements engine.Engine.
func (b *BacktestEngineV1) EventBus() *event.Bus {
	return b.bus
}

// Status implements engine.Engine.
func (b *BacktestEngineV1) Status() engine.Status {
	return b.status
}

// GetConfigSchema implements engine.Engine.
func (b *BacktestEngineV1) GetConfigSchema() (string, error) {
	return b.config.GenerateSchemaJSON()
}

// Run implements engine.Engine.
func (b *BacktestEngineV1) Run(ctx context.Context, strat strategy.Strategy, strategyConfig strategy.Config, source datasource.Source, initial *portfolio.Portfolio) (*types.BacktestResult, error) {
	if b.feeModel == nil || b.log == nil {
		return nil, errors.New(errors.ErrCodeInvalidEngineConfig, "engine is not initialized")
	}

	if b.status == engine.StatusRunning {
		return nil, errors.New(errors.ErrCodeRunNotIdle, "engine is already running")
	}

	if strat == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "strategy is nil")
	}

	if source == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "data source is nil")
	}

	if initial == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "initial portfolio is nil")
	}

	result := &types.BacktestResult{
		ID:         b.ids.NextID("run"),
		StrategyID: strategyConfig.StrategyID,
	}

	if err := strategyConfig.Validate(); err != nil {
		return b.abortBeforeRun(result, err)
	}

	if !strat.ValidateConfig(strategyConfig) {
		err := errors.Newf(errors.ErrCodeStrategyConfigInvalid, "strategy %s rejected its configuration", strat.Name())

		return b.abortBeforeRun(result, err)
	}

	total, err := source.Count(optional.None[time.Time](), optional.None[time.Time]())
	if err != nil {
		return b.abortBeforeRun(result, errors.Wrap(errors.ErrCodeDataGap, "failed to count data source ticks", err))
	}

	if total == 0 {
		return b.abortBeforeRun(result, errors.New(errors.ErrCodeEmptySeries, "data source yielded no ticks"))
	}

	b.status = engine.StatusRunning
	b.log.Info("Backtest run started",
		zap.String("run_id", result.ID),
		zap.String("strategy", strat.Name()),
		zap.Int("total_ticks", total),
	)

	run := &backtestRun{
		engine:         b,
		strategy:       strat,
		strategyConfig: strategyConfig,
		portfolio:      initial,
		result:         result,
		requiredFields: requiredFields(strategyConfig),
	}

	abortErr := run.replay(ctx, source)

	result.ProcessedTicks = run.processed
	result.HistoricalValues = run.values
	result.HistoricalReturns = run.returns
	result.Metrics = ComputeMetrics(run.values, run.returns, b.config.PeriodsPerYear)
	result.Positions = initial.Snapshot()

	if abortErr != nil {
		result.Aborted = true
		result.AbortedAtTick = run.tickIndex
		result.AbortReason = abortErr.Error()
		b.status = engine.StatusAborted

		b.log.Error("Backtest run aborted",
			zap.String("run_id", result.ID),
			zap.Int("tick", run.tickIndex),
			zap.Error(abortErr),
		)

		return result, abortErr
	}

	b.status = engine.StatusCompleted
	b.log.Info("Backtest run completed",
		zap.String("run_id", result.ID),
		zap.Int("processed_ticks", result.ProcessedTicks),
		zap.Float64("final_value", result.Metrics.FinalValue),
		zap.Float64("total_return", result.Metrics.TotalReturn),
		zap.Float64("sharpe_ratio", result.Metrics.SharpeRatio),
		zap.Float64("max_drawdown", result.Metrics.MaxDrawdown),
	)

	return result, nil
}

// abortBeforeRun finalizes a run that failed validation before any tick
// was processed.
func (b *BacktestEngineV1) abortBeforeRun(result *types.BacktestResult, err error) (*types.BacktestResult, error) {
	result.Aborted = true
	result.AbortedAtTick = -1
	result.AbortReason = err.Error()
	b.status = engine.StatusAborted

	return result, err
}

// requiredFields is the union of the engine's own requirement, the
// price, and whatever the strategy declared.
func requiredFields(config strategy.Config) []string {
	fields := []string{types.FieldPrice}
	for _, field := range config.RequiredFields {
		if field == types.FieldPrice {
			continue
		}
		fields = append(fields, field)
	}

	return fields
}

// backtestRun holds the mutable state of a single replay.
type backtestRun struct {
	engine         *BacktestEngineV1
	strategy       strategy.Strategy
	strategyConfig strategy.Config
	portfolio      *portfolio.Portfolio
	result         *types.BacktestResult
	requiredFields []string

	tickIndex       int
	processed       int
	consecutiveGaps int
	yieldLogged     bool
	values          []float64
	returns         []float64
	pendingEvents   []event.Event
}

// replay consumes the data source tick by tick. It returns nil when the
// stream is exhausted and the abort cause otherwise.
func (r *backtestRun) replay(ctx context.Context, source datasource.Source) error {
	cfg := r.engine.config
	r.tickIndex = -1

	for tick, err := range source.ReadAll(optional.None[time.Time](), optional.None[time.Time]()) {
		r.tickIndex++

		select {
		case <-ctx.Done():
			return errors.Wrap(errors.ErrCodeRunCancelled, "run cancelled", ctx.Err())
		default:
		}

		if err != nil {
			return errors.Wrap(errors.ErrCodeDataGap, "data source error", err)
		}

		if cfg.MaxTicks > 0 && r.processed >= cfg.MaxTicks {
			return errors.Newf(errors.ErrCodeRunAborted, "tick cap of %d reached", cfg.MaxTicks)
		}

		if procErr := r.processTick(tick); procErr != nil {
			return procErr
		}
	}

	return nil
}

func (r *backtestRun) processTick(tick types.MarketData) error {
	cfg := r.engine.config

	missing := tick.MissingFields(r.requiredFields)
	if len(missing) > 0 {
		r.consecutiveGaps++
		gapErr := errors.NewDataGapError(r.tickIndex, missing,
			fmt.Sprintf("tick %d is missing required fields %v", r.tickIndex, missing))

		if r.consecutiveGaps > cfg.MaxDataGap {
			return errors.Wrapf(errors.ErrCodeDataGapExceeded, gapErr,
				"%d consecutive incomplete ticks exceed the gap tolerance of %d",
				r.consecutiveGaps, cfg.MaxDataGap)
		}

		r.engine.log.Warn("Skipping tick with incomplete data",
			zap.Int("tick", r.tickIndex),
			zap.Error(gapErr),
		)

		// Carry the previous state forward so the history stays one
		// entry per tick.
		r.appendHistory()
		r.processed++

		return nil
	}
	r.consecutiveGaps = 0

	if !r.yieldLogged {
		r.logExpectedYield(tick)
	}

	if err := r.markPositions(tick); err != nil {
		return err
	}

	res, err := r.strategy.Execute(r.portfolio, tick, r.strategyConfig)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeStrategyExecution, err, "strategy %s failed at tick %d", r.strategy.Name(), r.tickIndex)
	}

	if err := r.applyTrades(res.Trades, tick); err != nil {
		return err
	}

	if err := r.applyPositions(res); err != nil {
		return err
	}

	if res.ShouldRebalance {
		r.pendingEvents = append(r.pendingEvents,
			event.NewRebalanceTriggered(r.engine.ids.NextID("evt"), tick.Time, r.strategyConfig.StrategyID, res.RebalanceReason))
	}

	r.scanLiquidationRisk(tick)

	// Events go out only after the tick's portfolio mutation is
	// complete, and before the next tick begins.
	for _, evt := range r.pendingEvents {
		r.engine.bus.Publish(evt)
	}
	r.pendingEvents = r.pendingEvents[:0]

	r.appendHistory()
	r.processed++

	return nil
}

// logExpectedYield logs the strategy's own projection once, on the
// first complete tick. A projection failure is not fatal to the run.
func (r *backtestRun) logExpectedYield(tick types.MarketData) {
	r.yieldLogged = true

	expectedYield, err := r.strategy.CalculateExpectedYield(r.strategyConfig, tick)
	if err != nil {
		r.engine.log.Warn("Expected yield projection failed",
			zap.String("strategy", r.strategy.Name()),
			zap.Error(err),
		)

		return
	}

	r.engine.log.Info("Expected yield projection",
		zap.String("strategy", r.strategy.Name()),
		zap.Float64("expected_apr", expectedYield.Value()),
	)
}

// markPositions refreshes every open position's mark price from the
// tick. A tick without an asset marks everything.
func (r *backtestRun) markPositions(tick types.MarketData) error {
	for _, position := range r.portfolio.Positions() {
		if tick.Asset != "" && position.Asset != tick.Asset {
			continue
		}

		if err := position.SetCurrentPrice(tick.Price); err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidPosition, err, "failed to mark position %s at tick %d", position.ID, r.tickIndex)
		}
	}

	return nil
}

func (r *backtestRun) applyTrades(trades []types.Trade, tick types.MarketData) error {
	cfg := r.engine.config

	for _, trade := range trades {
		if trade.ID == "" {
			trade.ID = r.engine.ids.NextID("trade")
		}

		if trade.StrategyID == "" {
			trade.StrategyID = r.strategyConfig.StrategyID
		}

		if trade.Timestamp.IsZero() {
			trade.Timestamp = tick.Time
		}

		if trade.Fees == 0 {
			trade.Fees = r.engine.feeModel.Calculate(trade.Amount, trade.Price)
		}

		if err := trade.Validate(); err != nil {
			return err
		}

		switch trade.Side {
		case types.TradeSideBuy:
			if err := r.portfolio.Debit(types.NewAmount(trade.TotalCost()), cfg.AllowNegativeCash); err != nil {
				return errors.Wrapf(errors.ErrCodeInsufficientCash, err, "buy of %s at tick %d rejected", trade.Asset, r.tickIndex)
			}
		case types.TradeSideSell:
			held := r.heldAmount(trade.Asset)
			if trade.Amount > held {
				return errors.Newf(errors.ErrCodeInsufficientHolding,
					"sell of %v %s exceeds the held %v at tick %d", trade.Amount, trade.Asset, held, r.tickIndex)
			}

			proceeds := trade.Value() - trade.Fees - trade.Slippage
			r.portfolio.Credit(types.NewAmount(proceeds))
		default:
			return errors.Newf(errors.ErrCodeUnknownTradeSide, "unknown trade side: %s", trade.Side)
		}

		r.result.Trades = append(r.result.Trades, trade)
		r.pendingEvents = append(r.pendingEvents,
			event.NewTradeExecuted(r.engine.ids.NextID("evt"), tick.Time, trade))
	}

	return nil
}

// heldAmount is the total long exposure to the asset across open
// positions. Sell trades settle against it; short exposure is opened
// through position upserts, not sells.
func (r *backtestRun) heldAmount(asset string) float64 {
	var held float64

	for _, position := range r.portfolio.Positions() {
		if position.Asset == asset && position.Side == types.PositionSideLong {
			held += position.Amount
		}
	}

	return held
}

func (r *backtestRun) applyPositions(res strategy.Result) error {
	for _, position := range res.Positions {
		position := position
		if _, exists := r.portfolio.Position(position.ID); exists {
			if err := r.portfolio.UpdatePosition(&position); err != nil {
				return err
			}

			continue
		}

		if err := r.portfolio.AddPosition(&position); err != nil {
			return err
		}
	}

	for _, id := range res.ClosedPositionIDs {
		if err := r.portfolio.RemovePosition(id); err != nil {
			return err
		}
	}

	return nil
}

// scanLiquidationRisk inspects every open position after the tick's
// mutations and publishes a breach event for each position whose
// liquidation proximity crosses the configured threshold. The position
// is not closed; acting on the breach is the strategy's call.
func (r *backtestRun) scanLiquidationRisk(tick types.MarketData) {
	threshold := r.engine.config.EmergencyCloseThreshold

	for _, position := range r.portfolio.Positions() {
		snapshot := risk.NewLiquidationRisk(position, position.CurrentPrice, tick.Time)
		if !snapshot.ShouldEmergencyClose(threshold) {
			continue
		}

		r.engine.log.Warn("Position crossed emergency close threshold",
			zap.String("position", position.ID),
			zap.String("asset", position.Asset),
			zap.Float64("proximity", snapshot.ProximityToLiquidation()),
			zap.Float64("threshold", threshold),
		)

		r.pendingEvents = append(r.pendingEvents,
			event.NewRiskLimitBreached(r.engine.ids.NextID("evt"), tick.Time,
				position.StrategyID, riskLimitLiquidationProximity,
				snapshot.ProximityToLiquidation(), threshold))
	}
}

func (r *backtestRun) appendHistory() {
	value := r.portfolio.TotalValue()

	tickReturn := 0.0
	if len(r.values) > 0 && r.values[len(r.values)-1] != 0 {
		previous := r.values[len(r.values)-1]
		tickReturn = (value - previous) / previous * 100
	}

	r.values = append(r.values, value)
	r.returns = append(r.returns, tickReturn)
}
