package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

type BusTestSuite struct {
	suite.Suite
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusTestSuite))
}

func (suite *BusTestSuite) TestEventAccessors() {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	trade := types.Trade{ID: "trade_1", StrategyID: "lp_range", Asset: "ETH", Side: types.TradeSideBuy, Amount: 1, Price: 2000, Timestamp: at}

	evt := NewTradeExecuted("event_1", at, trade)
	suite.Equal("event_1", evt.EventID())
	suite.Equal(at, evt.OccurredOn())
	suite.Equal(TypeTradeExecuted, evt.EventType())
	suite.Equal("trade_1", evt.Trade.ID)

	rebalance := NewRebalanceTriggered("event_2", at, "lp_range", "price outside range")
	suite.Equal(TypeRebalanceTriggered, rebalance.EventType())
	suite.Equal("price outside range", rebalance.Reason)

	breach := NewRiskLimitBreached("event_3", at, "perp_carry", "liquidation_proximity", 0.82, 0.7)
	suite.Equal(TypeRiskLimitBreached, breach.EventType())
	suite.Equal(0.82, breach.CurrentValue)
	suite.Equal(0.7, breach.Threshold)
}

func (suite *BusTestSuite) TestSubscribeByType() {
	bus := NewBus()
	at := time.Now()

	var tradeEvents, rebalanceEvents int

	bus.Subscribe(TypeTradeExecuted, func(Event) { tradeEvents++ })
	bus.Subscribe(TypeRebalanceTriggered, func(Event) { rebalanceEvents++ })

	bus.Publish(NewTradeExecuted("event_1", at, types.Trade{}))
	bus.Publish(NewTradeExecuted("event_2", at, types.Trade{}))
	bus.Publish(NewRebalanceTriggered("event_3", at, "lp_range", "drift"))

	suite.Equal(2, tradeEvents)
	suite.Equal(1, rebalanceEvents)
}

func (suite *BusTestSuite) TestSubscribeAll() {
	bus := NewBus()
	at := time.Now()

	var seen []Type

	bus.SubscribeAll(func(evt Event) { seen = append(seen, evt.EventType()) })

	bus.Publish(NewTradeExecuted("event_1", at, types.Trade{}))
	bus.Publish(NewRiskLimitBreached("event_2", at, "perp_carry", "liquidation_proximity", 0.9, 0.7))

	suite.Equal([]Type{TypeTradeExecuted, TypeRiskLimitBreached}, seen)
}

func (suite *BusTestSuite) TestSynchronousDelivery() {
	bus := NewBus()

	delivered := false
	bus.Subscribe(TypeTradeExecuted, func(Event) { delivered = true })

	bus.Publish(NewTradeExecuted("event_1", time.Now(), types.Trade{}))
	// Publish returns only after every handler ran
	suite.True(delivered)
}

func (suite *BusTestSuite) TestHandlerOrder() {
	bus := NewBus()

	var order []string

	bus.Subscribe(TypeTradeExecuted, func(Event) { order = append(order, "first") })
	bus.Subscribe(TypeTradeExecuted, func(Event) { order = append(order, "second") })
	bus.SubscribeAll(func(Event) { order = append(order, "all") })

	bus.Publish(NewTradeExecuted("event_1", time.Now(), types.Trade{}))
	suite.Equal([]string{"first", "second", "all"}, order)
}

func (suite *BusTestSuite) TestPublishWithNoHandlers() {
	bus := NewBus()
	// must not panic
	bus.Publish(NewTradeExecuted("event_1", time.Now(), types.Trade{}))
}
