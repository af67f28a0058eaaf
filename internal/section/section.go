package section

import (
	"fmt"

	"github.com/JohannesSchorr/mnkappa/internal/geometry"
	"github.com/JohannesSchorr/mnkappa/internal/material"
)

// Section pairs one geometry with one material. It is immutable after
// construction; computations derive read-only snapshots from it.
type Section struct {
	Geometry geometry.Geometry
	Material material.Material
}

// NewSection creates a section from a geometry and a material.
func NewSection(g geometry.Geometry, m material.Material) *Section {
	return &Section{Geometry: g, Material: m}
}

// TopEdge returns the upper edge position of the section's geometry.
func (s *Section) TopEdge() float64 {
	return s.Geometry.Edges()[0]
}

// BottomEdge returns the lower edge position of the section's geometry.
// For a zero-height shape it coincides with the top edge.
func (s *Section) BottomEdge() float64 {
	edges := s.Geometry.Edges()
	return edges[len(edges)-1]
}

// CrossSection is an ordered assembly of sections sharing one vertical axis.
// The order is insertion order.
type CrossSection struct {
	Sections []*Section
}

// NewCrossSection creates a cross-section from the given sections.
func NewCrossSection(sections ...*Section) *CrossSection {
	return &CrossSection{Sections: sections}
}

// OperandError reports an attempt to combine a value that is neither a
// section nor a cross-section.
type OperandError struct {
	Operand any
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("cannot combine operand of type %T into a cross-section", e.Operand)
}

// Combine merges sections and cross-sections into a new cross-section,
// preserving the order of the operands. Any other operand type fails with
// an OperandError.
func Combine(operands ...any) (*CrossSection, error) {
	cross := &CrossSection{}
	for _, operand := range operands {
		switch v := operand.(type) {
		case *Section:
			cross.Sections = append(cross.Sections, v)
		case *CrossSection:
			cross.Sections = append(cross.Sections, v.Sections...)
		default:
			return nil, &OperandError{Operand: operand}
		}
	}
	return cross, nil
}

// Top returns the smallest edge position over all member sections.
func (c *CrossSection) Top() float64 {
	top := c.Sections[0].TopEdge()
	for _, s := range c.Sections[1:] {
		if edge := s.TopEdge(); edge < top {
			top = edge
		}
	}
	return top
}

// Bottom returns the largest edge position over all member sections.
func (c *CrossSection) Bottom() float64 {
	bottom := c.Sections[0].BottomEdge()
	for _, s := range c.Sections[1:] {
		if edge := s.BottomEdge(); edge > bottom {
			bottom = edge
		}
	}
	return bottom
}

// Height returns the vertical extent of the cross-section.
func (c *CrossSection) Height() float64 {
	return c.Bottom() - c.Top()
}

// SectionType reports the common type of all member sections, or Mixed if
// the members disagree.
func (c *CrossSection) SectionType() material.SectionType {
	if len(c.Sections) == 0 {
		return material.Mixed
	}
	typ := c.Sections[0].Material.SectionType()
	for _, s := range c.Sections[1:] {
		if s.Material.SectionType() != typ {
			return material.Mixed
		}
	}
	return typ
}

// SectionsOfType returns the member sections carrying the given type, in
// insertion order.
func (c *CrossSection) SectionsOfType(typ material.SectionType) []*Section {
	var sections []*Section
	for _, s := range c.Sections {
		if s.Material.SectionType() == typ {
			sections = append(sections, s)
		}
	}
	return sections
}

// GirderSections returns the load-bearing member sections.
func (c *CrossSection) GirderSections() []*Section {
	return c.SectionsOfType(material.Girder)
}

// SlabSections returns the deck-type member sections.
func (c *CrossSection) SlabSections() []*Section {
	return c.SectionsOfType(material.Slab)
}
