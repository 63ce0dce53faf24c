package datasource

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

// SliceSource serves ticks from an in-memory slice. Ticks are yielded
// in the order they were provided.
type SliceSource struct {
	ticks []types.MarketData
}

func NewSliceSource(ticks []types.MarketData) *SliceSource {
	copied := make([]types.MarketData, len(ticks))
	copy(copied, ticks)

	return &SliceSource{
		ticks: copied,
	}
}

func (s *SliceSource) ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) func(yield func(types.MarketData, error) bool) {
	return func(yield func(types.MarketData, error) bool) {
		for _, tick := range s.ticks {
			if !inRange(tick, start, end) {
				continue
			}

			if !yield(tick, nil) {
				return
			}
		}
	}
}

func (s *SliceSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	count := 0
	for _, tick := range s.ticks {
		if inRange(tick, start, end) {
			count++
		}
	}

	return count, nil
}
