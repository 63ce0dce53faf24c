// Package portfolio holds the aggregate the backtest engine mutates:
// a set of open positions keyed by id plus a cash balance. The
// portfolio is exclusively owned by one engine run and is never
// accessed concurrently.
package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/types"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// Portfolio is the aggregate root. Positions never hold a back
// reference to their portfolio; ownership queries go through the
// engine's index.
type Portfolio struct {
	id        string
	cash      types.Amount
	positions map[string]*types.Position
	// ordering preserves insertion order so iteration is deterministic
	ordering []string
}

// New creates an empty Portfolio with the given starting cash.
func New(id string, initialCash types.Amount) *Portfolio {
	return &Portfolio{
		id:        id,
		cash:      initialCash,
		positions: make(map[string]*types.Position),
		ordering:  nil,
	}
}

// ID returns the portfolio identifier.
func (p *Portfolio) ID() string {
	return p.id
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() types.Amount {
	return p.cash
}

// Credit adds cash to the balance.
func (p *Portfolio) Credit(amount types.Amount) {
	p.cash = p.cash.Add(amount)
}

// Debit removes cash from the balance. Unless allowNegative is set, a
// debit that would take the balance below zero fails and leaves the
// balance untouched.
func (p *Portfolio) Debit(amount types.Amount, allowNegative bool) error {
	next := p.cash.Sub(amount)
	if next.IsNegative() && !allowNegative {
		return errors.Newf(errors.ErrCodeInsufficientCash,
			"debit of %v exceeds cash balance %v", amount.Value(), p.cash.Value())
	}

	p.cash = next

	return nil
}

// AddPosition adds a new position. The id must be unique within the
// portfolio.
func (p *Portfolio) AddPosition(position *types.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}

	if _, exists := p.positions[position.ID]; exists {
		return errors.Newf(errors.ErrCodeDuplicatePosition, "position %s already exists", position.ID)
	}

	p.positions[position.ID] = position
	p.ordering = append(p.ordering, position.ID)

	return nil
}

// RemovePosition removes a position by id.
func (p *Portfolio) RemovePosition(id string) error {
	if _, exists := p.positions[id]; !exists {
		return errors.Newf(errors.ErrCodePositionNotFound, "no position with id %s", id)
	}

	delete(p.positions, id)

	for i, existing := range p.ordering {
		if existing == id {
			p.ordering = append(p.ordering[:i], p.ordering[i+1:]...)

			break
		}
	}

	return nil
}

// UpdatePosition replaces an existing position with the same id.
func (p *Portfolio) UpdatePosition(position *types.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}

	if _, exists := p.positions[position.ID]; !exists {
		return errors.Newf(errors.ErrCodePositionNotFound, "no position with id %s", position.ID)
	}

	p.positions[position.ID] = position

	return nil
}

// Position returns the position with the given id.
func (p *Portfolio) Position(id string) (*types.Position, bool) {
	position, ok := p.positions[id]

	return position, ok
}

// Positions returns all open positions in insertion order.
func (p *Portfolio) Positions() []*types.Position {
	result := make([]*types.Position, 0, len(p.ordering))
	for _, id := range p.ordering {
		result = append(result, p.positions[id])
	}

	return result
}

// PositionCount returns the number of open positions.
func (p *Portfolio) PositionCount() int {
	return len(p.positions)
}

// TotalValue is cash plus the market value of every open position.
func (p *Portfolio) TotalValue() float64 {
	total := p.cash.Decimal()
	for _, id := range p.ordering {
		total = total.Add(decimal.NewFromFloat(p.positions[id].MarketValue()))
	}

	value, _ := total.Float64()

	return value
}

// TotalPnL is the sum of the unrealized PnL of every open position.
func (p *Portfolio) TotalPnL() types.PnL {
	total := types.ZeroPnL()
	for _, id := range p.ordering {
		total = total.Add(p.positions[id].UnrealizedPnL())
	}

	return total
}

// Snapshot returns a copy of every open position in insertion order,
// for result reporting.
func (p *Portfolio) Snapshot() []types.Position {
	result := make([]types.Position, 0, len(p.ordering))
	for _, id := range p.ordering {
		result = append(result, *p.positions[id])
	}

	return result
}
