package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// Well-known MarketData field names, used by strategies to declare
// required tick fields for the data-gap policy.
const (
	FieldPrice       = "price"
	FieldIV          = "iv"
	FieldFundingRate = "funding_rate"
	FieldVolume      = "volume"
)

// MarketData is a single tick of the input series. Price and Time are
// mandatory; everything else is optional and strategy-specific.
type MarketData struct {
	Time        time.Time                `yaml:"time" json:"time"`
	Asset       string                   `yaml:"asset" json:"asset"`
	Price       float64                  `yaml:"price" json:"price"`
	IV          optional.Option[float64] `yaml:"iv" json:"iv"`
	FundingRate optional.Option[float64] `yaml:"funding_rate" json:"funding_rate"`
	Volume      optional.Option[float64] `yaml:"volume" json:"volume"`
	// Extra carries strategy-specific fields keyed by name.
	Extra map[string]float64 `yaml:"extra" json:"extra"`
}

// Has reports whether the tick carries the named field. Price counts
// as present only when positive, since a zero price is unusable.
func (m MarketData) Has(field string) bool {
	switch field {
	case FieldPrice:
		return m.Price > 0
	case FieldIV:
		return m.IV.IsSome()
	case FieldFundingRate:
		return m.FundingRate.IsSome()
	case FieldVolume:
		return m.Volume.IsSome()
	default:
		_, ok := m.Extra[field]

		return ok
	}
}

// MissingFields returns the subset of the given field names the tick
// does not carry.
func (m MarketData) MissingFields(required []string) []string {
	var missing []string

	for _, field := range required {
		if !m.Has(field) {
			missing = append(missing, field)
		}
	}

	return missing
}

// Candle is an OHLC bar, the input for range-based volatility
// estimators.
type Candle struct {
	Time   time.Time `yaml:"time" json:"time"`
	Open   float64   `yaml:"open" json:"open"`
	High   float64   `yaml:"high" json:"high"`
	Low    float64   `yaml:"low" json:"low"`
	Close  float64   `yaml:"close" json:"close"`
	Volume float64   `yaml:"volume" json:"volume"`
}
