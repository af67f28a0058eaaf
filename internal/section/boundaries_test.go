package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohannesSchorr/mnkappa/internal/geometry"
	"github.com/JohannesSchorr/mnkappa/internal/material"
)

func TestBoundariesSymmetricSection(t *testing.T) {
	cross := NewCrossSection(elasticRectangle())

	boundaries, err := cross.Boundaries()
	require.NoError(t, err)

	positive := boundaries.Positive.MaximumCurvature
	negative := boundaries.Negative.MaximumCurvature

	// limits ±0.002 over 20 mm depth
	assert.InDelta(t, 0.0002, positive.Curvature, 1e-12)
	assert.InDelta(t, -0.0002, negative.Curvature, 1e-12)
	assert.InDelta(t, math.Abs(negative.Curvature), positive.Curvature, 1e-12,
		"symmetric section gives curvatures equal in magnitude")

	// the governing pair spans the full depth
	assert.InDelta(t, 20.0, math.Abs(positive.Start.Position-positive.Other.Position), 1e-9)
	assert.InDelta(t, 0.002, math.Abs(positive.Start.Strain), 1e-12)
	assert.Equal(t, positive.Curvature, positive.Start.Curvature)
}

func TestBoundariesStackedSections(t *testing.T) {
	// a stiff slab above a deep girder: the governing pair crosses the
	// member boundary
	slab := NewSection(
		geometry.NewRectangle(0, 10, 50),
		material.NewElastic(30000, 0.0035, material.Slab),
	)
	girder := NewSection(
		geometry.NewRectangle(10, 30, 10),
		material.NewElastic(200000, 0.002, material.Girder),
	)
	cross := NewCrossSection(slab, girder)

	boundaries, err := cross.Boundaries()
	require.NoError(t, err)

	// most restrictive positive line: girder tension limit at 30 mm
	// against the slab compression limit at the top edge
	assert.InDelta(t, (0.002+0.0035)/30, boundaries.Positive.MaximumCurvature.Curvature, 1e-12)
}

func TestMaximumCurvatureCompute(t *testing.T) {
	cross := NewCrossSection(elasticRectangle())
	boundaries, err := cross.Boundaries()
	require.NoError(t, err)

	// line from a bottom tension probe to the top compression limit
	curvature, err := boundaries.Positive.MaximumCurvature.Compute(StrainPosition{Strain: 0.001, Position: 20})
	require.NoError(t, err)
	assert.InDelta(t, (0.001+0.002)/20, curvature, 1e-12)

	// compression probe at the top pairs with the bottom tension limit
	curvature, err = boundaries.Positive.MaximumCurvature.Compute(StrainPosition{Strain: -0.001, Position: 0})
	require.NoError(t, err)
	assert.InDelta(t, (0.002+0.001)/20, curvature, 1e-12)
}

func TestMaximumCurvatureComputeNoConstraint(t *testing.T) {
	cross := NewCrossSection(elasticRectangle())
	boundaries, err := cross.Boundaries()
	require.NoError(t, err)

	// a tension probe above the whole cross-section only yields negative
	// line curvatures: no positive constraint exists
	_, err = boundaries.Positive.MaximumCurvature.Compute(StrainPosition{Strain: 0.001, Position: -10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no governing curvature constraint")
}

func TestMinimumCurvatureCompute(t *testing.T) {
	cross := NewCrossSection(elasticRectangle())
	boundaries, err := cross.Boundaries()
	require.NoError(t, err)

	minimum := boundaries.Positive.MinimumCurvature

	// probe below the tension limit: the line to the top limit point has
	// negative slope, leaving no positive candidate
	assert.Equal(t, 0.00001, minimum.Compute(StrainPosition{Strain: 0.001, Position: 20}))

	// probe above the tension limit keeps a positive candidate
	assert.InDelta(t, 0.0005/20, minimum.Compute(StrainPosition{Strain: 0.0025, Position: 20}), 1e-12)

	negative := boundaries.Negative.MinimumCurvature
	assert.Equal(t, -0.00001, negative.Compute(StrainPosition{Strain: -0.001, Position: 20}))
}

func TestStartBoundPicksSmallerImbalance(t *testing.T) {
	// reinforcement far below a plain rectangle shifts the equilibrium:
	// the two half-curvature trials differ and the better one wins
	plate := NewSection(
		geometry.NewRectangle(0, 20, 10),
		material.NewElastic(200000, 0.002, material.Girder),
	)
	bar := NewSection(
		geometry.Circle{Position: 100, Diameter: 20},
		material.NewReinforcement(500, 550, 0.025),
	)
	cross := NewCrossSection(plate, bar)

	boundaries, err := cross.Boundaries()
	require.NoError(t, err)

	maximum := boundaries.Positive.MaximumCurvature
	half := maximum.Curvature / 2

	trial := func(b Bound) float64 {
		na := b.Position - b.Strain/half
		return math.Abs(NewCurvatureCrossSection(cross, half, na).TotalAxialForce())
	}
	assert.LessOrEqual(t, trial(maximum.Start), trial(maximum.Other))
}

func TestBoundariesSinglePointFails(t *testing.T) {
	bar := NewSection(
		geometry.Circle{Position: 100, Diameter: 20},
		material.NewReinforcement(500, 550, 0.025),
	)
	cross := NewCrossSection(bar)

	_, err := cross.Boundaries()
	require.Error(t, err, "a single point has no edge pair to span a curvature")
}
