package idgen

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (suite *IDGenTestSuite) TestMonotonicSequence() {
	source := NewMonotonicSource()

	suite.Equal("trade_1", source.NextID("trade"))
	suite.Equal("trade_2", source.NextID("trade"))
	// the counter is shared across prefixes, ids stay globally ordered
	suite.Equal("event_3", source.NextID("event"))
}

func (suite *IDGenTestSuite) TestMonotonicReproducibility() {
	a := NewMonotonicSource()
	b := NewMonotonicSource()

	for i := 0; i < 100; i++ {
		suite.Equal(a.NextID("id"), b.NextID("id"))
	}
}

func (suite *IDGenTestSuite) TestUUIDSourceUniqueness() {
	source := NewUUIDSource()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := source.NextID("run")
		suite.False(seen[id])
		seen[id] = true
	}
}
