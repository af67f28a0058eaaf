package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohannesSchorr/mnkappa/internal/geometry"
	"github.com/JohannesSchorr/mnkappa/internal/material"
)

func compositeCrossSection() *CrossSection {
	slab := NewSection(
		geometry.NewRectangle(0, 10, 50),
		material.NewElastic(30000, 0.0035, material.Slab),
	)
	girder := NewSection(
		geometry.NewRectangle(10, 30, 10),
		material.NewElastic(200000, 0.002, material.Girder),
	)
	return NewCrossSection(slab, girder)
}

func TestCombine(t *testing.T) {
	a := elasticRectangle()
	b := NewSection(geometry.NewRectangle(20, 30, 10), material.NewElastic(200000, 0.002, material.Girder))

	cross, err := Combine(a, b)
	require.NoError(t, err)
	require.Len(t, cross.Sections, 2)
	assert.Same(t, a, cross.Sections[0])

	// combining a cross-section and a section keeps the member order
	c := NewSection(geometry.Circle{Position: 25, Diameter: 12}, material.NewReinforcement(500, 550, 0.025))
	extended, err := Combine(cross, c)
	require.NoError(t, err)
	require.Len(t, extended.Sections, 3)
	assert.Same(t, c, extended.Sections[2])
}

func TestCombineRejectsInvalidOperand(t *testing.T) {
	_, err := Combine(elasticRectangle(), 42)
	require.Error(t, err)

	var operandErr *OperandError
	require.ErrorAs(t, err, &operandErr)
	assert.Equal(t, 42, operandErr.Operand)
	assert.Contains(t, err.Error(), "int")
}

func TestCrossSectionEdges(t *testing.T) {
	cross := compositeCrossSection()

	assert.Equal(t, 0.0, cross.Top())
	assert.Equal(t, 30.0, cross.Bottom())
	assert.Equal(t, 30.0, cross.Height())
}

func TestCrossSectionType(t *testing.T) {
	cross := compositeCrossSection()
	assert.Equal(t, material.Mixed, cross.SectionType())
	assert.Len(t, cross.SlabSections(), 1)
	assert.Len(t, cross.GirderSections(), 1)

	homogeneous := NewCrossSection(elasticRectangle())
	assert.Equal(t, material.Girder, homogeneous.SectionType())
}

func TestStrainCrossSectionAdditivity(t *testing.T) {
	cross := compositeCrossSection()
	computed := NewStrainCrossSection(cross, 0.001)

	var force, moment float64
	for _, s := range cross.Sections {
		single := NewStrainSection(s, 0.001)
		force += single.AxialForce
		moment += single.Moment
	}
	assert.InDelta(t, force, computed.TotalAxialForce(), 1e-9)
	assert.InDelta(t, moment, computed.TotalMoment(), 1e-9)
}

func TestStrainCrossSectionTypeGroups(t *testing.T) {
	cross := compositeCrossSection()
	computed := NewStrainCrossSection(cross, 0.001)

	girder := computed.AxialForceByType(material.Girder)
	slab := computed.AxialForceByType(material.Slab)
	assert.InDelta(t, computed.TotalAxialForce(), girder+slab, 1e-9)
	assert.InDelta(t, 10*20*200.0, girder, 1e-6)
	assert.InDelta(t, 50*10*30.0, slab, 1e-6)

	assert.InDelta(t, computed.TotalMoment(),
		computed.MomentByType(material.Girder)+computed.MomentByType(material.Slab), 1e-9)
}

func TestCurvatureCrossSectionSplitMatchesMembers(t *testing.T) {
	law := material.NewSteel(400, 400, 0.15)
	cross := NewCrossSection(
		NewSection(geometry.NewRectangle(0, 20, 10), law),
		NewSection(geometry.NewRectangle(20, 40, 10), law),
	)

	computed := NewCurvatureCrossSection(cross, 0.0002, 20)
	require.Len(t, computed.Sections, 2)
	require.Len(t, computed.SplitSections, 4, "each member yields at one interior position")

	// the profile is antisymmetric about the neutral axis at 20 mm
	assert.InDelta(t, 0.0, computed.TotalAxialForce(), 1e-6)

	// plastic plateaus over the outer quarters, elastic core in between;
	// moment integrated by hand over the four sub-spans
	assert.InDelta(t, 1466666.67, computed.TotalMoment(), 1e-1)
}

func TestStrainAddSignRule(t *testing.T) {
	cross := NewCrossSection(elasticRectangle())

	positive := NewStrainCrossSection(cross, 0.001)
	negative := NewStrainCrossSection(cross, -0.001)

	// combined moment 400000 - 400000 = 0, not positive: sign flips
	added := NewStrainAddCrossSection(positive, negative)
	assert.InDelta(t, 0.0, added.TotalMoment(), 1e-9)
	assert.InDelta(t, -40000.0, added.AxialForce(), 1e-6)
	assert.InDelta(t, -0.002, added.StrainDifference(), 1e-12)

	// a dominant first operand keeps the combined moment positive
	dominant := NewStrainAddCrossSection(positive, NewStrainCrossSection(cross, -0.0005))
	assert.Greater(t, dominant.TotalMoment(), 0.0)
	assert.InDelta(t, 40000.0, dominant.AxialForce(), 1e-6)
	assert.InDelta(t, 0.0015, dominant.StrainDifference(), 1e-12)
}

func TestStrainAddEdges(t *testing.T) {
	upper := NewCrossSection(NewSection(geometry.NewRectangle(0, 10, 50), material.NewElastic(30000, 0.0035, material.Slab)))
	lower := NewCrossSection(NewSection(geometry.NewRectangle(10, 30, 10), material.NewElastic(200000, 0.002, material.Girder)))

	added := NewStrainAddCrossSection(
		NewStrainCrossSection(upper, 0.001),
		NewStrainCrossSection(lower, -0.001),
	)
	assert.Equal(t, 0.0, added.Top())
	assert.Equal(t, 30.0, added.Bottom())
}
