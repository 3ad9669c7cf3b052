package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	assert.Equal(t, a.Values(100, 1000), b.Values(100, 1000))
	assert.Equal(t, a.Capacities(50, 16), b.Capacities(50, 16))
	assert.Equal(t, int64(7), a.Seed())
}

func TestRNGReset(t *testing.T) {
	r := NewRNG(42)
	first := r.Values(10, 100)
	r.Reset()
	assert.Equal(t, first, r.Values(10, 100))
}

func TestCapacitiesBounds(t *testing.T) {
	r := NewRNG(1)
	caps := r.Capacities(1000, 8)
	require.Len(t, caps, 1000)
	for _, c := range caps {
		assert.GreaterOrEqual(t, c, 0)
		assert.LessOrEqual(t, c, 8)
	}
}
