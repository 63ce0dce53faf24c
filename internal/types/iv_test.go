package types

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

type IVTestSuite struct {
	suite.Suite
}

func TestIVSuite(t *testing.T) {
	suite.Run(t, new(IVTestSuite))
}

func (suite *IVTestSuite) TestNewIV() {
	tests := []struct {
		name        string
		value       float64
		expectError bool
	}{
		{name: "Zero", value: 0, expectError: false},
		{name: "Typical", value: 65.4, expectError: false},
		{name: "Upper bound", value: 1000, expectError: false},
		{name: "Negative", value: -0.1, expectError: true},
		{name: "Above upper bound", value: 1000.1, expectError: true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			iv, err := NewIV(tt.value)
			if tt.expectError {
				suite.Error(err)
				suite.True(errors.HasCode(err, errors.ErrCodeInvalidVolatility))
			} else {
				suite.NoError(err)
				suite.Equal(tt.value, iv.Value())
			}
		})
	}
}

func (suite *IVTestSuite) TestLevel() {
	thresholds := DefaultIVThresholds()

	tests := []struct {
		name     string
		value    float64
		expected VolatilityLevel
	}{
		{name: "Calm market", value: 15, expected: VolatilityLevelLow},
		{name: "Just below low threshold", value: 29.99, expected: VolatilityLevelLow},
		{name: "At low threshold", value: 30, expected: VolatilityLevelMid},
		{name: "Mid range", value: 55, expected: VolatilityLevelMid},
		{name: "At high threshold", value: 80, expected: VolatilityLevelHigh},
		{name: "Stressed market", value: 250, expected: VolatilityLevelHigh},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Equal(tt.expected, MustIV(tt.value).Level(thresholds))
		})
	}
}

func (suite *IVTestSuite) TestLevelCustomThresholds() {
	custom := IVThresholds{Low: 10, High: 20}
	suite.Equal(VolatilityLevelHigh, MustIV(25).Level(custom))
	suite.Equal(VolatilityLevelLow, MustIV(5).Level(custom))
}
