package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles_ZeroForSamePoint(t *testing.T) {
	p := orb.Point{-93.5527, 39.7953}
	assert.Equal(t, 0.0, DistanceMiles(p, p))
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	chillicothe := orb.Point{-93.5527, 39.7953}
	kirksville := orb.Point{-92.5832, 40.1948}

	d1 := DistanceMiles(chillicothe, kirksville)
	d2 := DistanceMiles(kirksville, chillicothe)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceMiles_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      orb.Point
		wantMiles float64
		tolerance float64
	}{
		{
			// Chillicothe -> Kirksville, roughly 57 miles apart.
			name:      "chillicothe to kirksville",
			a:         orb.Point{-93.5527, 39.7953},
			b:         orb.Point{-92.5832, 40.1948},
			wantMiles: 57.0,
			tolerance: 2.0,
		},
		{
			// One degree of latitude is about 69 miles.
			name:      "one degree latitude",
			a:         orb.Point{-93.0, 39.0},
			b:         orb.Point{-93.0, 40.0},
			wantMiles: 69.1,
			tolerance: 0.2,
		},
		{
			// Hannibal -> Moberly, roughly 60 miles apart.
			name:      "hannibal to moberly",
			a:         orb.Point{-91.3585, 39.7084},
			b:         orb.Point{-92.4382, 39.4186},
			wantMiles: 60.0,
			tolerance: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantMiles, DistanceMiles(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestDistanceMiles_Deterministic(t *testing.T) {
	a := orb.Point{-93.5527, 39.7953}
	b := orb.Point{-91.3585, 39.7084}

	first := DistanceMiles(a, b)
	for range 10 {
		assert.Equal(t, first, DistanceMiles(a, b))
	}
}

func TestDistanceMiles_PropagatesNaN(t *testing.T) {
	a := orb.Point{math.NaN(), 39.0}
	b := orb.Point{-93.0, 40.0}

	assert.True(t, math.IsNaN(DistanceMiles(a, b)))
}
