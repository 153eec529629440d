package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, "2", p.Value)

	_, ok = snap.Lookup("z")
	assert.False(t, ok)
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	assert.Equal(t, 0.0, c.Clamp(-2))
	assert.Equal(t, 1.0, c.Clamp(7))
	assert.Equal(t, 0.5, c.Clamp(0.5))

	open := ParameterControl{Min: 0, HasMin: true}
	assert.Equal(t, 42.0, open.Clamp(42))
}

func TestChance(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if Chance(r, 0) {
			t.Fatal("probability 0 must never fire")
		}
		if !Chance(r, 1) {
			t.Fatal("probability 1 must always fire")
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(8), NewRNG(8)
	for i := 0; i < 16; i++ {
		av, bv := a.Float64(), b.Float64()
		assert.Equal(t, av, bv)
		assert.True(t, av >= 0 && av < 1)
	}
}
