package types

import (
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (suite *MarketTestSuite) TestHas() {
	tick := MarketData{
		Time:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Asset: "ETH",
		Price: 2000,
		IV:    optional.Some(62.5),
		Extra: map[string]float64{"pool_depth": 1_500_000},
	}

	suite.True(tick.Has(FieldPrice))
	suite.True(tick.Has(FieldIV))
	suite.False(tick.Has(FieldFundingRate))
	suite.False(tick.Has(FieldVolume))
	suite.True(tick.Has("pool_depth"))
	suite.False(tick.Has("oracle_price"))
}

func (suite *MarketTestSuite) TestHasRejectsZeroPrice() {
	tick := MarketData{Price: 0}
	suite.False(tick.Has(FieldPrice))
}

func (suite *MarketTestSuite) TestMissingFields() {
	tick := MarketData{
		Price:       2000,
		FundingRate: optional.Some(0.0001),
	}

	missing := tick.MissingFields([]string{FieldPrice, FieldIV, FieldFundingRate, "pool_depth"})
	suite.Equal([]string{FieldIV, "pool_depth"}, missing)

	suite.Nil(tick.MissingFields([]string{FieldPrice}))
}
