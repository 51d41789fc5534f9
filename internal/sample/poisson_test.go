package sample

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
)

func TestSampleSpacing(t *testing.T) {
	s := Sampler{Bounds: geom.Box(0, 0, 10, 10), MinDist: 1, MaxDist: 1}
	pts := s.Sample(rand.New(rand.NewPCG(1, 2)))
	require.Greater(t, len(pts), 30)
	for i := range pts {
		assert.True(t, s.Bounds.Contains(pts[i]))
		for j := i + 1; j < len(pts); j++ {
			assert.GreaterOrEqual(t, geom.Distance(pts[i], pts[j]), 1.0-1e-9)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	s := Sampler{
		Bounds:  geom.Box(0, 0, 8, 4),
		MinDist: 0.5,
		MaxDist: 2,
		Density: func(p linetree.Point) float64 { return 0.5 + p[0]/8*1.5 },
	}
	a := s.Sample(rand.New(rand.NewPCG(9, 9)))
	b := s.Sample(rand.New(rand.NewPCG(9, 9)))
	assert.Equal(t, a, b)
}

func TestSampleLimitAndEmpty(t *testing.T) {
	s := Sampler{Bounds: geom.Box(0, 0, 10, 10), MinDist: 0.2, Limit: 25}
	assert.Len(t, s.Sample(rand.New(rand.NewPCG(3, 4))), 25)

	assert.Nil(t, Sampler{Bounds: geom.Box(0, 0, 0, 10), MinDist: 1}.Sample(rand.New(rand.NewPCG(1, 1))))
	assert.Nil(t, Sampler{Bounds: geom.Box(0, 0, 10, 10)}.Sample(rand.New(rand.NewPCG(1, 1))))
}
