package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator(t *testing.T) {
	gen := NewRandomGenerator()

	first := gen.New()
	second := gen.New()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestSequenceGenerator(t *testing.T) {
	gen := NewSequenceGenerator("pager")

	assert.Equal(t, "pager-1", gen.New())
	assert.Equal(t, "pager-2", gen.New())
}
