// Package risk derives liquidation and divergence risk metrics from
// positions and prices. Everything here is purely computational:
// calculators never mutate the position they read.
package risk

import (
	"time"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
)

// Level buckets liquidation proximity. The boundaries are fixed.
type Level string

const (
	LevelSafe     Level = "SAFE"
	LevelWarning  Level = "WARNING"
	LevelDanger   Level = "DANGER"
	LevelCritical Level = "CRITICAL"
)

// DefaultEmergencyCloseThreshold is the proximity at which a position
// should be force-closed.
const DefaultEmergencyCloseThreshold = 0.7

// LiquidationRisk is an immutable snapshot of a position's distance to
// forced liquidation, computed fresh each tick and then discarded.
type LiquidationRisk struct {
	Asset            string
	Exchange         string
	Side             types.PositionSide
	MarkPrice        float64
	LiquidationPrice float64
	EntryPrice       float64
	PositionSize     float64
	PositionValueUSD float64
	Margin           float64
	Leverage         float64
	Timestamp        time.Time

	distance float64
}

// NewLiquidationRisk builds a snapshot from a position and the current
// mark price. A position without an exchange-supplied liquidation
// price is treated as maximally safe.
func NewLiquidationRisk(position *types.Position, markPrice float64, at time.Time) LiquidationRisk {
	liquidationPrice := 0.0
	if position.LiquidationPrice.IsSome() {
		liquidationPrice = position.LiquidationPrice.Unwrap()
	}

	return LiquidationRisk{
		Asset:            position.Asset,
		Exchange:         position.Exchange,
		Side:             position.Side,
		MarkPrice:        markPrice,
		LiquidationPrice: liquidationPrice,
		EntryPrice:       position.EntryPrice,
		PositionSize:     position.Amount,
		PositionValueUSD: position.Amount * markPrice,
		Margin:           position.Margin,
		Leverage:         position.Leverage,
		Timestamp:        at,
		distance:         distanceToLiquidation(position.Side, markPrice, liquidationPrice),
	}
}

// NewSafeLiquidationRisk builds a placeholder snapshot for a position
// with no liquidation data, assumed maximally safe.
func NewSafeLiquidationRisk(position *types.Position, at time.Time) LiquidationRisk {
	return LiquidationRisk{
		Asset:            position.Asset,
		Exchange:         position.Exchange,
		Side:             position.Side,
		MarkPrice:        position.CurrentPrice,
		LiquidationPrice: 0,
		EntryPrice:       position.EntryPrice,
		PositionSize:     position.Amount,
		PositionValueUSD: position.MarketValue(),
		Margin:           position.Margin,
		Leverage:         position.Leverage,
		Timestamp:        at,
		distance:         1,
	}
}

// distanceToLiquidation is the normalized gap between mark and
// liquidation price, in [0, 1]. Missing data (non-positive prices)
// reads as the full distance.
func distanceToLiquidation(side types.PositionSide, markPrice, liquidationPrice float64) float64 {
	if markPrice <= 0 || liquidationPrice <= 0 {
		return 1
	}

	var distance float64

	switch side {
	case types.PositionSideShort:
		distance = (liquidationPrice - markPrice) / markPrice
	case types.PositionSideLong:
		distance = (markPrice - liquidationPrice) / markPrice
	}

	if distance < 0 {
		return 0
	}

	// a short's liquidation price can sit more than 100% above the
	// mark; cap so proximity stays non-negative
	if distance > 1 {
		return 1
	}

	return distance
}

// DistanceToLiquidation returns the normalized distance in [0, 1],
// where 1 is maximally safe.
func (r LiquidationRisk) DistanceToLiquidation() float64 {
	return r.distance
}

// ProximityToLiquidation returns 1 - distance, where 1 means the mark
// price sits on the liquidation price.
func (r LiquidationRisk) ProximityToLiquidation() float64 {
	return 1 - r.distance
}

// RiskLevel buckets the proximity.
func (r LiquidationRisk) RiskLevel() Level {
	proximity := r.ProximityToLiquidation()

	switch {
	case proximity >= 0.7:
		return LevelCritical
	case proximity >= 0.5:
		return LevelDanger
	case proximity >= 0.3:
		return LevelWarning
	default:
		return LevelSafe
	}
}

// ShouldEmergencyClose reports whether the proximity has reached the
// given threshold.
func (r LiquidationRisk) ShouldEmergencyClose(threshold float64) bool {
	return r.ProximityToLiquidation() >= threshold
}
