package datasource

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

type SliceSourceTestSuite struct {
	suite.Suite
}

func TestSliceSourceSuite(t *testing.T) {
	suite.Run(t, new(SliceSourceTestSuite))
}

func (suite *SliceSourceTestSuite) ticks() []types.MarketData {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := make([]types.MarketData, 5)
	for i := range ticks {
		ticks[i] = types.MarketData{
			Time:  base.Add(time.Duration(i) * time.Hour),
			Asset: "ETH",
			Price: 100 + float64(i),
		}
	}

	return ticks
}

func (suite *SliceSourceTestSuite) TestReadAllPreservesOrder() {
	source := NewSliceSource(suite.ticks())

	var prices []float64
	for tick, err := range source.ReadAll(optional.None[time.Time](), optional.None[time.Time]()) {
		suite.Require().NoError(err)
		prices = append(prices, tick.Price)
	}

	suite.Equal([]float64{100, 101, 102, 103, 104}, prices)
}

func (suite *SliceSourceTestSuite) TestReadAllIsRestartable() {
	source := NewSliceSource(suite.ticks())

	for run := 0; run < 2; run++ {
		count := 0
		for _, err := range source.ReadAll(optional.None[time.Time](), optional.None[time.Time]()) {
			suite.Require().NoError(err)
			count++
		}
		suite.Equal(5, count)
	}
}

func (suite *SliceSourceTestSuite) TestReadAllTimeRange() {
	ticks := suite.ticks()
	source := NewSliceSource(ticks)

	start := optional.Some(ticks[1].Time)
	end := optional.Some(ticks[3].Time)

	var prices []float64
	for tick, err := range source.ReadAll(start, end) {
		suite.Require().NoError(err)
		prices = append(prices, tick.Price)
	}

	suite.Equal([]float64{101, 102, 103}, prices)
}

func (suite *SliceSourceTestSuite) TestReadAllEarlyStop() {
	source := NewSliceSource(suite.ticks())

	count := 0
	source.ReadAll(optional.None[time.Time](), optional.None[time.Time]())(func(tick types.MarketData, err error) bool {
		count++

		return count < 2
	})

	suite.Equal(2, count)
}

func (suite *SliceSourceTestSuite) TestCount() {
	ticks := suite.ticks()
	source := NewSliceSource(ticks)

	total, err := source.Count(optional.None[time.Time](), optional.None[time.Time]())
	suite.Require().NoError(err)
	suite.Equal(5, total)

	trimmed, err := source.Count(optional.Some(ticks[2].Time), optional.None[time.Time]())
	suite.Require().NoError(err)
	suite.Equal(3, trimmed)
}

func (suite *SliceSourceTestSuite) TestSourceIsolatedFromCallerSlice() {
	ticks := suite.ticks()
	source := NewSliceSource(ticks)
	ticks[0].Price = -1

	for tick, err := range source.ReadAll(optional.None[time.Time](), optional.None[time.Time]()) {
		suite.Require().NoError(err)
		suite.Equal(100.0, tick.Price)

		break
	}
}
