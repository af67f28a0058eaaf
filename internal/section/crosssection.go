package section

import (
	"math"

	"github.com/JohannesSchorr/mnkappa/internal/material"
)

// StrainCrossSection computes every member of a cross-section under one
// uniform imposed strain.
type StrainCrossSection struct {
	CrossSection *CrossSection
	Strain       float64
	Sections     []*StrainSection // one computed section per member
}

// NewStrainCrossSection computes the cross-section under a constant strain.
func NewStrainCrossSection(cross *CrossSection, strain float64) *StrainCrossSection {
	computed := &StrainCrossSection{CrossSection: cross, Strain: strain}
	for _, s := range cross.Sections {
		computed.Sections = append(computed.Sections, NewStrainSection(s, strain))
	}
	return computed
}

// TotalAxialForce returns the sum of the member axial forces (N).
func (c *StrainCrossSection) TotalAxialForce() float64 {
	var total float64
	for _, s := range c.Sections {
		total += s.AxialForce
	}
	return total
}

// TotalMoment returns the sum of the member moments (Nmm).
func (c *StrainCrossSection) TotalMoment() float64 {
	var total float64
	for _, s := range c.Sections {
		total += s.Moment
	}
	return total
}

// AxialForceByType sums the axial forces of the members carrying the
// given section type.
func (c *StrainCrossSection) AxialForceByType(typ material.SectionType) float64 {
	var total float64
	for _, s := range c.Sections {
		if s.Section.Material.SectionType() == typ {
			total += s.AxialForce
		}
	}
	return total
}

// MomentByType sums the moments of the members carrying the given type.
func (c *StrainCrossSection) MomentByType(typ material.SectionType) float64 {
	var total float64
	for _, s := range c.Sections {
		if s.Section.Material.SectionType() == typ {
			total += s.Moment
		}
	}
	return total
}

// CurvatureCrossSection computes every member of a cross-section under a
// linear strain profile. Aggregation runs over the split sub-sections so
// the stress integration stays piecewise-linear exact across material
// breakpoints.
type CurvatureCrossSection struct {
	CrossSection *CrossSection
	Curvature    float64
	NeutralAxis  float64

	Sections []*CurvatureSection // one computed section per member

	// SplitSections concatenates SplitSection() of every member in
	// member order
	SplitSections []*CurvatureSection
}

// NewCurvatureCrossSection computes the cross-section under the strain
// profile strain(z) = curvature * (z - neutralAxis).
func NewCurvatureCrossSection(cross *CrossSection, curvature, neutralAxis float64) *CurvatureCrossSection {
	computed := &CurvatureCrossSection{
		CrossSection: cross,
		Curvature:    curvature,
		NeutralAxis:  neutralAxis,
	}
	for _, s := range cross.Sections {
		member := NewCurvatureSection(s, curvature, neutralAxis)
		computed.Sections = append(computed.Sections, member)
		computed.SplitSections = append(computed.SplitSections, member.SplitSection()...)
	}
	return computed
}

// TotalAxialForce returns the sum of the split sub-section forces (N).
func (c *CurvatureCrossSection) TotalAxialForce() float64 {
	var total float64
	for _, s := range c.SplitSections {
		total += s.AxialForce
	}
	return total
}

// TotalMoment returns the sum of the split sub-section moments (Nmm).
func (c *CurvatureCrossSection) TotalMoment() float64 {
	var total float64
	for _, s := range c.SplitSections {
		total += s.Moment
	}
	return total
}

// AxialForceByType sums the split sub-section forces of the given type.
func (c *CurvatureCrossSection) AxialForceByType(typ material.SectionType) float64 {
	var total float64
	for _, s := range c.SplitSections {
		if s.Section.Material.SectionType() == typ {
			total += s.AxialForce
		}
	}
	return total
}

// MomentByType sums the split sub-section moments of the given type.
func (c *CurvatureCrossSection) MomentByType(typ material.SectionType) float64 {
	var total float64
	for _, s := range c.SplitSections {
		if s.Section.Material.SectionType() == typ {
			total += s.Moment
		}
	}
	return total
}

// StrainAddCrossSection superposes two independently computed uniform
// strain cross-sections, e.g. consecutive load stages applied to the same
// geometry. The reported axial force and strain difference take the
// magnitude of the first operand, signed by the combined total moment:
// positive when the combined moment is positive, negated otherwise. The
// rule is asymmetric between the operands on purpose.
type StrainAddCrossSection struct {
	First  *StrainCrossSection
	Second *StrainCrossSection
}

// NewStrainAddCrossSection superposes two computed cross-sections.
func NewStrainAddCrossSection(first, second *StrainCrossSection) *StrainAddCrossSection {
	return &StrainAddCrossSection{First: first, Second: second}
}

// Top returns the smaller of both operands' top edges.
func (c *StrainAddCrossSection) Top() float64 {
	return math.Min(c.First.CrossSection.Top(), c.Second.CrossSection.Top())
}

// Bottom returns the larger of both operands' bottom edges.
func (c *StrainAddCrossSection) Bottom() float64 {
	return math.Max(c.First.CrossSection.Bottom(), c.Second.CrossSection.Bottom())
}

// TotalMoment returns the combined moment of both operands (Nmm).
func (c *StrainAddCrossSection) TotalMoment() float64 {
	return c.First.TotalMoment() + c.Second.TotalMoment()
}

// AxialForce returns the magnitude of the first operand's total axial
// force, negated whenever the combined moment is not positive.
func (c *StrainAddCrossSection) AxialForce() float64 {
	force := math.Abs(c.First.TotalAxialForce())
	if c.TotalMoment() > 0 {
		return force
	}
	return -force
}

// StrainDifference returns the strain offset between both operands,
// signed by the same combined-moment rule as AxialForce.
func (c *StrainAddCrossSection) StrainDifference() float64 {
	difference := math.Abs(c.First.Strain - c.Second.Strain)
	if c.TotalMoment() > 0 {
		return difference
	}
	return -difference
}
