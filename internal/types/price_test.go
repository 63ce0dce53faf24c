package types

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

type PriceTestSuite struct {
	suite.Suite
}

func TestPriceSuite(t *testing.T) {
	suite.Run(t, new(PriceTestSuite))
}

func (suite *PriceTestSuite) TestNewPrice() {
	tests := []struct {
		name        string
		value       float64
		expectError bool
	}{
		{
			name:        "Positive price",
			value:       100.5,
			expectError: false,
		},
		{
			name:        "Small positive price",
			value:       0.00000001,
			expectError: false,
		},
		{
			name:        "Zero price",
			value:       0,
			expectError: true,
		},
		{
			name:        "Negative price",
			value:       -42,
			expectError: true,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			price, err := NewPrice(tt.value)
			if tt.expectError {
				suite.Error(err)
				suite.True(errors.HasCode(err, errors.ErrCodeInvalidPrice))
			} else {
				suite.NoError(err)
				suite.Equal(tt.value, price.Value())
			}
		})
	}
}

func (suite *PriceTestSuite) TestMul() {
	price := MustPrice(100)

	doubled, err := price.Mul(2)
	suite.NoError(err)
	suite.Equal(200.0, doubled.Value())
	// the original is untouched
	suite.Equal(100.0, price.Value())

	_, err = price.Mul(-1)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPrice))
}

func (suite *PriceTestSuite) TestDiv() {
	price := MustPrice(100)

	half, err := price.Div(2)
	suite.NoError(err)
	suite.Equal(50.0, half.Value())

	_, err = price.Div(0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDivisionByZero))

	_, err = price.Div(-2)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPrice))
}

func (suite *PriceTestSuite) TestPercentageChange() {
	entry := MustPrice(100)
	current := MustPrice(110)

	suite.InDelta(10.0, current.PercentageChange(entry), 1e-9)
	suite.InDelta(-9.0909090909, MustPrice(100).PercentageChange(MustPrice(110)), 1e-9)
	suite.Equal(0.0, entry.PercentageChange(entry))
}

func (suite *PriceTestSuite) TestEqual() {
	suite.True(MustPrice(1.5).Equal(MustPrice(1.5)))
	suite.False(MustPrice(1.5).Equal(MustPrice(2.5)))
}

func (suite *PriceTestSuite) TestMustPricePanics() {
	suite.Panics(func() { MustPrice(0) })
}
