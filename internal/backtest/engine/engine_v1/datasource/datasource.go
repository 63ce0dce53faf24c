package datasource

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

// Source is a finite, restartable market data stream. A fresh call to
// ReadAll re-reads from the start, which is what lets a backtest be
// re-run against the same inputs.
type Source interface {
	// ReadAll yields ticks in stream order, optionally trimmed to the
	// given time range, and stops early when yield returns false.
	ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) func(yield func(types.MarketData, error) bool)
	// Count returns the number of ticks ReadAll would yield for the
	// given range.
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
}

func inRange(tick types.MarketData, start optional.Option[time.Time], end optional.Option[time.Time]) bool {
	if start.IsSome() && tick.Time.Before(start.Unwrap()) {
		return false
	}

	if end.IsSome() && tick.Time.After(end.Unwrap()) {
		return false
	}

	return true
}
