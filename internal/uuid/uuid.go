// Package uuid hands out identifiers for pager sessions and request ids
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique string ids
type Generator interface {
	New() string
}

// RandomGenerator returns random (version 4) UUIDs
type RandomGenerator struct{}

// New generates a new UUID string
func (RandomGenerator) New() string {
	return uuid.NewString()
}

// NewRandomGenerator creates the production generator
func NewRandomGenerator() Generator {
	return RandomGenerator{}
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is meant for tests
type SequenceGenerator struct {
	prefix string

	mu   sync.Mutex
	next int
}

// NewSequenceGenerator creates a deterministic generator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next id in the sequence
func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
