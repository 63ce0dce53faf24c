package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MetricsTestSuite struct {
	suite.Suite
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (suite *MetricsTestSuite) TestMaxDrawdown() {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"peak then trough", []float64{100, 120, 90, 110}, 25},
		{"monotonic rise", []float64{100, 110, 120}, 0},
		{"monotonic fall", []float64{100, 80, 60}, 40},
		{"single value", []float64{100}, 0},
		{"flat series", []float64{100, 100, 100}, 0},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			metrics := ComputeMetrics(tc.values, make([]float64, len(tc.values)), 252)
			suite.InDelta(tc.expected, metrics.MaxDrawdown, 1e-12)
		})
	}
}

func (suite *MetricsTestSuite) TestSharpeRatio() {
	returns := []float64{0.01, -0.02, 0.015, 0.005}
	values := []float64{100, 98, 99.5, 100}

	metrics := ComputeMetrics(values, returns, 252)

	suite.InDelta(2.5528888301902892, metrics.SharpeRatio, 1e-12)
}

func (suite *MetricsTestSuite) TestSharpeRatioFlatReturns() {
	metrics := ComputeMetrics([]float64{100, 100, 100}, []float64{0.5, 0.5, 0.5}, 252)
	suite.Equal(0.0, metrics.SharpeRatio)
}

func (suite *MetricsTestSuite) TestSharpeRatioTooFewReturns() {
	metrics := ComputeMetrics([]float64{100}, []float64{0.01}, 252)
	suite.Equal(0.0, metrics.SharpeRatio)
}

func (suite *MetricsTestSuite) TestTotalReturnAndFinalValue() {
	metrics := ComputeMetrics([]float64{1000, 1010}, []float64{0, 1}, 252)

	suite.InDelta(1.0, metrics.TotalReturn, 1e-12)
	suite.Equal(1010.0, metrics.FinalValue)
}

func (suite *MetricsTestSuite) TestEmptySeries() {
	metrics := ComputeMetrics(nil, nil, 252)

	suite.Equal(0.0, metrics.TotalReturn)
	suite.Equal(0.0, metrics.SharpeRatio)
	suite.Equal(0.0, metrics.MaxDrawdown)
	suite.Equal(0.0, metrics.FinalValue)
}
