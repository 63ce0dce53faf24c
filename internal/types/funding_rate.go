package types

// FundingRate is a perpetual-swap funding rate per funding interval,
// as a decimal fraction (0.0001 means 1 basis point). It carries no
// invariant beyond being a value object; rates are routinely negative.
type FundingRate struct {
	value float64
}

// NewFundingRate creates a FundingRate.
func NewFundingRate(value float64) FundingRate {
	return FundingRate{value: value}
}

// Value returns the rate as a decimal fraction.
func (f FundingRate) Value() float64 {
	return f.value
}

// Annualize projects the rate to an APR given the number of funding
// intervals per year (1095 for the usual 8h interval).
func (f FundingRate) Annualize(intervalsPerYear int) APR {
	return NewAPR(f.value * float64(intervalsPerYear) * 100)
}

// Equal reports value equality.
func (f FundingRate) Equal(other FundingRate) bool {
	return f.value == other.value
}
