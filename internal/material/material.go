package material

// SectionType classifies the structural role of a section's material.
type SectionType string

const (
	// Girder marks load-bearing steel parts of a composite cross-section
	Girder SectionType = "girder"

	// Slab marks concrete deck parts including their reinforcement
	Slab SectionType = "slab"

	// Mixed is reported by assemblies whose members disagree on type
	Mixed SectionType = "mixed"
)

// StressStrain is one breakpoint of a piecewise linear stress-strain law.
type StressStrain struct {
	Strain float64 // dimensionless
	Stress float64 // N/mm²
}

// Material is a stress-strain law approximated by an ordered table of
// breakpoints. The law must be defined for every strain in the closed
// interval [MinimumStrain, MaximumStrain]; lookups outside that interval
// are a contract violation of the caller.
type Material interface {
	// MaximumStrain returns the largest admissible (tensile) strain
	MaximumStrain() float64

	// MinimumStrain returns the smallest admissible (compressive) strain
	MinimumStrain() float64

	// StressStrain returns the breakpoints ordered ascending by strain
	StressStrain() []StressStrain

	// Stress returns the stress at the given strain, interpolating
	// linearly between breakpoints
	Stress(strain float64) float64

	// IntermediateStrains returns the breakpoint strains lying strictly
	// between zero and the given strain, ordered from zero towards it
	IntermediateStrains(strain float64) []float64

	// SectionType reports the structural role of the material
	SectionType() SectionType
}
