package section

import (
	"math"

	"github.com/JohannesSchorr/mnkappa/internal/geometry"
	"github.com/JohannesSchorr/mnkappa/internal/material"
)

// strainDigits is the number of decimal digits a strain is rounded to
// before a stress lookup, stabilizing lookups at material breakpoints
// against floating point noise.
const strainDigits = 7

func roundStrain(strain float64) float64 {
	scale := math.Pow10(strainDigits)
	return math.Round(strain*scale) / scale
}

// ComputationSection is the read-only snapshot derived from integrating
// the stress field of one section under an imposed strain state. It is
// embedded by the two imposed-state variants and never mutated after
// construction.
type ComputationSection struct {
	Section *Section

	// EdgeStrains holds the strain at each geometry edge, in edge order.
	// A zero-height shape carries a single entry at its point position.
	EdgeStrains []float64

	// EdgeStresses holds the material stress at each edge strain
	EdgeStresses []float64

	// StressSlope and StressInterception describe the affine stress field
	// stress(z) = StressSlope*z + StressInterception over a two-edge span
	StressSlope        float64
	StressInterception float64

	AxialForce float64 // N
	LeverArm   float64 // mm, force-weighted centroid of the stress field
	Moment     float64 // Nmm, AxialForce * LeverArm
}

// compute fills the snapshot from the strain distribution given as a
// function of vertical position.
func (c *ComputationSection) compute(strainAt func(position float64) float64) {
	g := c.Section.Geometry
	edges := g.Edges()

	for _, edge := range edges {
		strain := strainAt(edge)
		c.EdgeStrains = append(c.EdgeStrains, strain)
		c.EdgeStresses = append(c.EdgeStresses, c.Section.Material.Stress(roundStrain(strain)))
	}

	if len(edges) == 1 {
		// point shape: the full area acts at the single position
		c.AxialForce = g.Area() * c.EdgeStresses[0]
		c.LeverArm = edges[0]
		if c.AxialForce == 0 {
			c.LeverArm = 0
		}
		c.Moment = c.AxialForce * c.LeverArm
		return
	}

	if height := g.Height(); height != 0 {
		c.StressSlope = (c.EdgeStresses[1] - c.EdgeStresses[0]) / height
	}
	c.StressInterception = c.EdgeStresses[0] - c.StressSlope*edges[0]

	force, firstMoment := integrateStressField(g, c.StressSlope, c.StressInterception)
	c.AxialForce = force
	if force != 0 {
		c.LeverArm = firstMoment / force
	}
	c.Moment = c.AxialForce * c.LeverArm
}

// integrateStressField evaluates the closed-form integrals of
// width(z)*stress(z) and width(z)*stress(z)*z over the span of a two-edge
// geometry. Width and stress are both affine in z, so the antiderivatives
// are a cubic and a quartic polynomial evaluated at the edges.
func integrateStressField(g geometry.Geometry, stressSlope, stressInterception float64) (force, firstMoment float64) {
	edges := g.Edges()
	top, bottom := edges[0], edges[1]

	quad := g.WidthSlope() * stressSlope
	lin := g.WidthSlope()*stressInterception + g.WidthInterception()*stressSlope
	con := g.WidthInterception() * stressInterception

	forceAntiderivative := func(z float64) float64 {
		return quad*z*z*z/3 + lin*z*z/2 + con*z
	}
	momentAntiderivative := func(z float64) float64 {
		return quad*z*z*z*z/4 + lin*z*z*z/3 + con*z*z/2
	}

	force = forceAntiderivative(bottom) - forceAntiderivative(top)
	firstMoment = momentAntiderivative(bottom) - momentAntiderivative(top)
	return force, firstMoment
}

// StrainSection computes a section under a uniform imposed strain.
type StrainSection struct {
	ComputationSection
	Strain float64
}

// NewStrainSection computes the given section under a constant strain.
func NewStrainSection(s *Section, strain float64) *StrainSection {
	computed := &StrainSection{
		ComputationSection: ComputationSection{Section: s},
		Strain:             strain,
	}
	computed.compute(func(float64) float64 { return strain })
	return computed
}

// CurvatureSection computes a section under a linear strain profile given
// by a curvature and the neutral axis position.
type CurvatureSection struct {
	ComputationSection
	Curvature   float64 // 1/mm
	NeutralAxis float64 // mm, position of zero strain
}

// NewCurvatureSection computes the given section under the strain profile
// strain(z) = curvature * (z - neutralAxis).
func NewCurvatureSection(s *Section, curvature, neutralAxis float64) *CurvatureSection {
	computed := &CurvatureSection{
		ComputationSection: ComputationSection{Section: s},
		Curvature:          curvature,
		NeutralAxis:        neutralAxis,
	}
	computed.compute(computed.StrainAt)
	return computed
}

// StrainAt returns the imposed strain at a vertical position.
func (c *CurvatureSection) StrainAt(position float64) float64 {
	return c.Curvature * (position - c.NeutralAxis)
}

// positionOf inverts the strain profile for a given strain.
func (c *CurvatureSection) positionOf(strain float64) float64 {
	return c.NeutralAxis + strain/c.Curvature
}

// traversalStrains returns the material breakpoint strains in the order a
// split walks them: ascending for positive curvature, descending for
// negative. The shared material value stays untouched.
func traversalStrains(m material.Material, curvature float64) []float64 {
	points := m.StressStrain()
	strains := make([]float64, len(points))
	for i, p := range points {
		if curvature > 0 {
			strains[i] = p.Strain
		} else {
			strains[i] = points[len(points)-1-i].Strain
		}
	}
	return strains
}

// SplitSection cuts the section at every material breakpoint the strain
// profile crosses strictly inside the span and returns one computed
// sub-section per sub-span. The summed axial force and moment of the
// result equal the unsplit integrals to numerical precision.
func (c *CurvatureSection) SplitSection() []*CurvatureSection {
	edges := c.Section.Geometry.Edges()
	if len(edges) == 1 || c.Curvature == 0 {
		return []*CurvatureSection{c}
	}

	low := math.Min(c.EdgeStrains[0], c.EdgeStrains[1])
	high := math.Max(c.EdgeStrains[0], c.EdgeStrains[1])

	var positions []float64
	for _, strain := range traversalStrains(c.Section.Material, c.Curvature) {
		if strain > low && strain < high {
			positions = append(positions, c.positionOf(strain))
		}
	}

	var split []*CurvatureSection
	for _, g := range c.Section.Geometry.Split(positions) {
		sub := NewSection(g, c.Section.Material)
		split = append(split, NewCurvatureSection(sub, c.Curvature, c.NeutralAxis))
	}
	return split
}

// MaterialPointsInsideCurvature reports the material breakpoints lying
// strictly between zero and the strain at the edge that is not on the
// allowed side of the strain profile. For positive curvature and positive
// strain the bottom edge is the allowed one, and symmetrically for the
// other sign combinations. A non-empty result flags breakpoint crossings
// that no split of this span covers; callers validate coverage with it,
// nothing is corrected here.
func (c *CurvatureSection) MaterialPointsInsideCurvature() []StrainPosition {
	edges := c.Section.Geometry.Edges()
	if len(edges) == 1 || c.Curvature == 0 {
		return nil
	}

	topStrain, bottomStrain := c.EdgeStrains[0], c.EdgeStrains[1]
	bottomAllowed := c.Curvature*bottomStrain > 0
	topAllowed := c.Curvature*topStrain < 0

	var checked float64
	switch {
	case bottomAllowed && topAllowed:
		// the span straddles the neutral axis, splitting covers all
		// breakpoints between the edge strains
		return nil
	case bottomAllowed:
		checked = topStrain
	case topAllowed:
		checked = bottomStrain
	default:
		return nil
	}

	var points []StrainPosition
	for _, strain := range c.Section.Material.IntermediateStrains(checked) {
		points = append(points, StrainPosition{Strain: strain, Position: c.positionOf(strain)})
	}
	return points
}
