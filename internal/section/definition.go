package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/JohannesSchorr/mnkappa/internal/geometry"
	"github.com/JohannesSchorr/mnkappa/internal/material"
)

// Definition is a cross-section description read from a JSON file. The
// member order in the file becomes the member order of the cross-section.
type Definition struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Sections    []SectionDefinition `json:"sections"`
}

// SectionDefinition pairs one shape with one material law.
type SectionDefinition struct {
	Shape    ShapeDefinition    `json:"shape"`
	Material MaterialDefinition `json:"material"`
}

// ShapeDefinition describes one geometry. Type selects which fields apply:
// "rectangle" (top, bottom, width), "trapezoid" (top, bottom, top_width,
// bottom_width) or "circle" (position, diameter).
type ShapeDefinition struct {
	Type string `json:"type"`

	Top    float64 `json:"top,omitempty"`    // mm
	Bottom float64 `json:"bottom,omitempty"` // mm
	Width  float64 `json:"width,omitempty"`  // mm

	TopWidth    float64 `json:"top_width,omitempty"`    // mm
	BottomWidth float64 `json:"bottom_width,omitempty"` // mm

	Position float64 `json:"position,omitempty"` // mm, bar centre
	Diameter float64 `json:"diameter,omitempty"` // mm
}

// MaterialDefinition describes one stress-strain law. Type selects the
// fields: "steel"/"reinforcement" (fy, fu, failure_strain), "concrete"
// (fc) or "elastic" (modulus, failure_strain, section_type).
type MaterialDefinition struct {
	Type string `json:"type"`

	Fy            float64 `json:"fy,omitempty"` // MPa
	Fu            float64 `json:"fu,omitempty"` // MPa
	FailureStrain float64 `json:"failure_strain,omitempty"`

	Fc float64 `json:"fc,omitempty"` // MPa

	Modulus     float64 `json:"modulus,omitempty"` // MPa
	SectionType string  `json:"section_type,omitempty"`
}

// ValidationError reports an invalid cross-section definition.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// LoadFromFile loads a cross-section definition from a JSON file and
// builds the cross-section from it.
func LoadFromFile(filepath string) (*CrossSection, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var definition Definition
	if err := json.Unmarshal(data, &definition); err != nil {
		return nil, err
	}

	return definition.Build()
}

// Build validates the definition and assembles the cross-section.
func (d *Definition) Build() (*CrossSection, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cross := &CrossSection{}
	for _, sd := range d.Sections {
		g, err := sd.Shape.build()
		if err != nil {
			return nil, err
		}
		m, err := sd.Material.build()
		if err != nil {
			return nil, err
		}
		cross.Sections = append(cross.Sections, NewSection(g, m))
	}
	return cross, nil
}

// Validate checks the definition before any section is built.
func (d *Definition) Validate() error {
	if len(d.Sections) == 0 {
		return &ValidationError{"cross-section must have at least one section"}
	}
	for i, sd := range d.Sections {
		if err := sd.Shape.validate(); err != nil {
			return &ValidationError{fmt.Sprintf("section %d: %v", i+1, err)}
		}
		if err := sd.Material.validate(); err != nil {
			return &ValidationError{fmt.Sprintf("section %d: %v", i+1, err)}
		}
	}
	return nil
}

func (s *ShapeDefinition) validate() error {
	switch s.Type {
	case "rectangle":
		if s.Bottom <= s.Top {
			return fmt.Errorf("rectangle bottom edge must lie below the top edge")
		}
		if s.Width <= 0 {
			return fmt.Errorf("rectangle width must be positive")
		}
	case "trapezoid":
		if s.Bottom <= s.Top {
			return fmt.Errorf("trapezoid bottom edge must lie below the top edge")
		}
		if s.TopWidth <= 0 || s.BottomWidth <= 0 {
			return fmt.Errorf("trapezoid widths must be positive")
		}
	case "circle":
		if s.Diameter <= 0 {
			return fmt.Errorf("circle diameter must be positive")
		}
	default:
		return fmt.Errorf("unknown shape type %q", s.Type)
	}
	return nil
}

func (s *ShapeDefinition) build() (geometry.Geometry, error) {
	switch s.Type {
	case "rectangle":
		return geometry.NewRectangle(s.Top, s.Bottom, s.Width), nil
	case "trapezoid":
		return geometry.Trapezoid{
			Top:         s.Top,
			Bottom:      s.Bottom,
			TopWidth:    s.TopWidth,
			BottomWidth: s.BottomWidth,
		}, nil
	case "circle":
		return geometry.Circle{Position: s.Position, Diameter: s.Diameter}, nil
	}
	return nil, fmt.Errorf("unknown shape type %q", s.Type)
}

func (m *MaterialDefinition) validate() error {
	switch m.Type {
	case "steel", "reinforcement":
		if m.Fy <= 0 || m.Fu <= 0 {
			return fmt.Errorf("steel strengths must be positive")
		}
		if m.FailureStrain <= m.Fy/material.Es {
			return fmt.Errorf("steel failure strain must exceed the yield strain")
		}
	case "concrete":
		if m.Fc <= 0 {
			return fmt.Errorf("f'c must be positive")
		}
	case "elastic":
		if m.Modulus <= 0 || m.FailureStrain <= 0 {
			return fmt.Errorf("elastic modulus and failure strain must be positive")
		}
		if t := material.SectionType(m.SectionType); t != material.Girder && t != material.Slab {
			return fmt.Errorf("elastic material needs section_type %q or %q", material.Girder, material.Slab)
		}
	default:
		return fmt.Errorf("unknown material type %q", m.Type)
	}
	return nil
}

func (m *MaterialDefinition) build() (material.Material, error) {
	switch m.Type {
	case "steel":
		return material.NewSteel(m.Fy, m.Fu, m.FailureStrain), nil
	case "reinforcement":
		return material.NewReinforcement(m.Fy, m.Fu, m.FailureStrain), nil
	case "concrete":
		return material.NewConcrete(m.Fc), nil
	case "elastic":
		return material.NewElastic(m.Modulus, m.FailureStrain, material.SectionType(m.SectionType)), nil
	}
	return nil, fmt.Errorf("unknown material type %q", m.Type)
}
