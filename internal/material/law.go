package material

import "sort"

// Law is a piecewise linear stress-strain relationship built from an
// ordered breakpoint table. It satisfies Material and is immutable after
// construction.
type Law struct {
	points []StressStrain
	typ    SectionType
}

// NewLaw builds a law from arbitrary breakpoints, sorting them ascending
// by strain.
func NewLaw(typ SectionType, points ...StressStrain) Law {
	sorted := make([]StressStrain, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Strain < sorted[j].Strain
	})
	return Law{points: sorted, typ: typ}
}

func (l Law) MaximumStrain() float64 {
	return l.points[len(l.points)-1].Strain
}

func (l Law) MinimumStrain() float64 {
	return l.points[0].Strain
}

// StressStrain returns a copy of the breakpoint table, ascending by strain.
func (l Law) StressStrain() []StressStrain {
	points := make([]StressStrain, len(l.points))
	copy(points, l.points)
	return points
}

// Stress interpolates the law at the given strain. Strains beyond the
// outermost breakpoints take the boundary stress.
func (l Law) Stress(strain float64) float64 {
	if strain <= l.points[0].Strain {
		return l.points[0].Stress
	}
	if strain >= l.points[len(l.points)-1].Strain {
		return l.points[len(l.points)-1].Stress
	}
	for i := 1; i < len(l.points); i++ {
		p0, p1 := l.points[i-1], l.points[i]
		if strain > p1.Strain {
			continue
		}
		if p1.Strain == p0.Strain {
			return p1.Stress
		}
		t := (strain - p0.Strain) / (p1.Strain - p0.Strain)
		return p0.Stress + t*(p1.Stress-p0.Stress)
	}
	return l.points[len(l.points)-1].Stress
}

// IntermediateStrains returns the breakpoint strains strictly between zero
// and the given strain, ordered from zero towards it.
func (l Law) IntermediateStrains(strain float64) []float64 {
	var strains []float64
	if strain > 0 {
		for _, p := range l.points {
			if p.Strain > 0 && p.Strain < strain {
				strains = append(strains, p.Strain)
			}
		}
		return strains
	}
	for i := len(l.points) - 1; i >= 0; i-- {
		p := l.points[i]
		if p.Strain < 0 && p.Strain > strain {
			strains = append(strains, p.Strain)
		}
	}
	return strains
}

func (l Law) SectionType() SectionType {
	return l.typ
}
