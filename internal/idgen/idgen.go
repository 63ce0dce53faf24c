// Package idgen provides injectable id sources. The backtest engine
// defaults to the monotonic source so that ids are reproducible across
// runs and comparable in tests; callers that need globally unique run
// ids can inject the UUID source instead.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Source produces identifiers for trades, events and runs.
type Source interface {
	// NextID returns the next identifier with the given prefix.
	NextID(prefix string) string
}

// MonotonicSource is a deterministic counter-backed Source. Not safe
// for concurrent use; the engine is single-threaded by design.
type MonotonicSource struct {
	counter uint64
}

// NewMonotonicSource creates a MonotonicSource starting at 1.
func NewMonotonicSource() *MonotonicSource {
	return &MonotonicSource{counter: 0}
}

// NextID implements Source.
func (s *MonotonicSource) NextID(prefix string) string {
	s.counter++

	return fmt.Sprintf("%s_%d", prefix, s.counter)
}

// UUIDSource produces random UUID-backed identifiers.
type UUIDSource struct{}

// NewUUIDSource creates a UUIDSource.
func NewUUIDSource() *UUIDSource {
	return &UUIDSource{}
}

// NextID implements Source.
func (s *UUIDSource) NextID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
