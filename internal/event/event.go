// Package event defines the domain events the backtest engine
// publishes and a synchronous in-process bus to deliver them. Events
// are immutable records; the bus offers no persistence or replay.
package event

import (
	"time"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

// Type discriminates event variants.
type Type string

const (
	TypeTradeExecuted      Type = "trade_executed"
	TypeRebalanceTriggered Type = "rebalance_triggered"
	TypeRiskLimitBreached  Type = "risk_limit_breached"
)

// Event is the common contract of all domain events.
type Event interface {
	// EventID returns the unique event identifier.
	EventID() string
	// OccurredOn returns the event creation time.
	OccurredOn() time.Time
	// EventType returns the variant discriminant.
	EventType() Type
}

type base struct {
	id         string
	occurredOn time.Time
	eventType  Type
}

func (b base) EventID() string       { return b.id }
func (b base) OccurredOn() time.Time { return b.occurredOn }
func (b base) EventType() Type       { return b.eventType }

// TradeExecuted is published after a trade has been applied to the
// portfolio.
type TradeExecuted struct {
	base

	Trade types.Trade
}

// NewTradeExecuted creates a TradeExecuted event.
func NewTradeExecuted(id string, occurredOn time.Time, trade types.Trade) TradeExecuted {
	return TradeExecuted{
		base:  base{id: id, occurredOn: occurredOn, eventType: TypeTradeExecuted},
		Trade: trade,
	}
}

// RebalanceTriggered is published when a strategy signals that the
// portfolio composition should change.
type RebalanceTriggered struct {
	base

	StrategyID string
	Reason     string
}

// NewRebalanceTriggered creates a RebalanceTriggered event.
func NewRebalanceTriggered(id string, occurredOn time.Time, strategyID, reason string) RebalanceTriggered {
	return RebalanceTriggered{
		base:       base{id: id, occurredOn: occurredOn, eventType: TypeRebalanceTriggered},
		StrategyID: strategyID,
		Reason:     reason,
	}
}

// RiskLimitBreached is published when a risk metric crosses its
// configured threshold.
type RiskLimitBreached struct {
	base

	StrategyID   string
	LimitType    string
	CurrentValue float64
	Threshold    float64
}

// NewRiskLimitBreached creates a RiskLimitBreached event.
func NewRiskLimitBreached(id string, occurredOn time.Time, strategyID, limitType string, currentValue, threshold float64) RiskLimitBreached {
	return RiskLimitBreached{
		base:         base{id: id, occurredOn: occurredOn, eventType: TypeRiskLimitBreached},
		StrategyID:   strategyID,
		LimitType:    limitType,
		CurrentValue: currentValue,
		Threshold:    threshold,
	}
}
