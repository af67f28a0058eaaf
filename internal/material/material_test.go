package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLawSortsBreakpoints(t *testing.T) {
	law := NewLaw(Girder,
		StressStrain{Strain: 0.002, Stress: 400},
		StressStrain{Strain: -0.002, Stress: -400},
		StressStrain{Strain: 0, Stress: 0},
	)

	points := law.StressStrain()
	require.Len(t, points, 3)
	assert.Equal(t, -0.002, points[0].Strain)
	assert.Equal(t, 0.002, points[2].Strain)
	assert.Equal(t, -0.002, law.MinimumStrain())
	assert.Equal(t, 0.002, law.MaximumStrain())
}

func TestLawStressInterpolates(t *testing.T) {
	law := NewElastic(200000, 0.002, Girder)

	assert.InDelta(t, 200.0, law.Stress(0.001), 1e-9)
	assert.InDelta(t, -200.0, law.Stress(-0.001), 1e-9)
	assert.InDelta(t, 0.0, law.Stress(0), 1e-9)
	assert.InDelta(t, 400.0, law.Stress(0.002), 1e-9)
}

func TestLawStressClampsBeyondLimits(t *testing.T) {
	law := NewElastic(200000, 0.002, Girder)

	assert.InDelta(t, 400.0, law.Stress(0.01), 1e-9)
	assert.InDelta(t, -400.0, law.Stress(-0.01), 1e-9)
}

func TestSteelLaw(t *testing.T) {
	law := NewSteel(400, 500, 0.15)

	assert.Equal(t, Girder, law.SectionType())
	assert.InDelta(t, 0.15, law.MaximumStrain(), 1e-12)
	assert.InDelta(t, -0.15, law.MinimumStrain(), 1e-12)
	// elastic branch
	assert.InDelta(t, 200.0, law.Stress(0.001), 1e-9)
	// yield point at fy/Es
	assert.InDelta(t, 400.0, law.Stress(0.002), 1e-9)
	// hardening branch ends at fu
	assert.InDelta(t, 500.0, law.Stress(0.15), 1e-9)
	assert.InDelta(t, -400.0, law.Stress(-0.002), 1e-9)
}

func TestReinforcementIsSlabType(t *testing.T) {
	law := NewReinforcement(500, 550, 0.025)
	assert.Equal(t, Slab, law.SectionType())
}

func TestConcreteLaw(t *testing.T) {
	law := NewConcrete(30)

	assert.Equal(t, Slab, law.SectionType())
	assert.InDelta(t, -30.0, law.Stress(-EpsilonCU2), 1e-9)
	assert.InDelta(t, -30.0, law.Stress(-EpsilonC2), 1e-9)
	// parabola at half the peak strain: 1 - (1-0.5)^2 = 0.75
	assert.InDelta(t, -22.5, law.Stress(-0.001), 1e-9)
	assert.InDelta(t, 0.0, law.Stress(0), 1e-9)
	// cracked concrete carries no tension
	assert.InDelta(t, 0.0, law.Stress(0.005), 1e-9)
	assert.Greater(t, law.Stress(0.00005), 0.0, "uncracked tension branch")
}

func TestIntermediateStrains(t *testing.T) {
	law := NewLaw(Girder,
		StressStrain{Strain: -0.004, Stress: -400},
		StressStrain{Strain: -0.001, Stress: -200},
		StressStrain{Strain: 0, Stress: 0},
		StressStrain{Strain: 0.001, Stress: 200},
		StressStrain{Strain: 0.003, Stress: 350},
		StressStrain{Strain: 0.004, Stress: 400},
	)

	assert.Equal(t, []float64{0.001, 0.003}, law.IntermediateStrains(0.0035))
	assert.Equal(t, []float64{-0.001}, law.IntermediateStrains(-0.0035))
	assert.Empty(t, law.IntermediateStrains(0.0005))
	// the bounding strains themselves are excluded
	assert.Equal(t, []float64{0.001}, law.IntermediateStrains(0.003))
}
