package section

import (
	"fmt"
	"math"
	"sort"
)

// StrainPosition ties a strain to a vertical position on the cross-section.
type StrainPosition struct {
	Strain   float64 // dimensionless
	Position float64 // mm
}

// Bound is one governing limit point together with the curvature derived
// from it.
type Bound struct {
	StrainPosition
	Curvature float64 // 1/mm
}

// lineCurvature is the slope of the strain line through two points.
func lineCurvature(a, b StrainPosition) float64 {
	return (a.Strain - b.Strain) / (a.Position - b.Position)
}

// MaximumCurvature carries the governing curvature of one bending sign:
// the largest curvature the cross-section sustains before a material
// exceeds its strain limits. Start names the governing edge an external
// equilibrium solver begins its iteration from; Other is the second point
// of the governing pair.
type MaximumCurvature struct {
	Curvature float64
	Start     Bound
	Other     Bound

	maxStrains []StrainPosition
	minStrains []StrainPosition
}

// Compute returns the bounding curvature of the line from the probe point
// to the most restrictive limiting point on the opposite strain side. It
// fails when no limiting point yields a curvature of the boundary's sign.
func (m MaximumCurvature) Compute(probe StrainPosition) (float64, error) {
	opposite := m.minStrains
	if probe.Strain <= 0 {
		opposite = m.maxStrains
	}

	positive := m.Curvature > 0
	var curvatures []float64
	for _, limit := range opposite {
		if limit.Position == probe.Position {
			continue
		}
		curvature := lineCurvature(probe, limit)
		if curvature != 0 && positive == (curvature > 0) {
			curvatures = append(curvatures, curvature)
		}
	}
	if len(curvatures) == 0 {
		return 0, fmt.Errorf(
			"no governing curvature constraint for strain %g at position %g",
			probe.Strain, probe.Position)
	}
	if positive {
		return minFloat(curvatures), nil
	}
	return maxFloat(curvatures), nil
}

// sentinelCurvature signals the absence of a meaningful minimum curvature
// constraint without returning an unusable zero.
const sentinelCurvature = 0.00001

// MinimumCurvature answers, for a probe point, the smallest curvature of
// the boundary's sign that still matters. Candidates are restricted to
// limiting points whose strain shares the probe's sign; without any
// compatible candidate a small signed sentinel curvature is returned.
type MinimumCurvature struct {
	maxStrains []StrainPosition
	minStrains []StrainPosition
	positive   bool
}

// Compute returns the bounding minimum curvature for the probe point.
func (m MinimumCurvature) Compute(probe StrainPosition) float64 {
	same := m.maxStrains
	if probe.Strain <= 0 {
		same = m.minStrains
	}

	var curvatures []float64
	for _, limit := range same {
		if limit.Position == probe.Position || limit.Strain*probe.Strain < 0 {
			continue
		}
		curvature := lineCurvature(probe, limit)
		if curvature != 0 && m.positive == (curvature > 0) {
			curvatures = append(curvatures, curvature)
		}
	}
	if len(curvatures) == 0 {
		if m.positive {
			return sentinelCurvature
		}
		return -sentinelCurvature
	}
	if m.positive {
		return minFloat(curvatures)
	}
	return maxFloat(curvatures)
}

// BoundaryValues pairs the maximum and minimum curvature of one bending
// sign.
type BoundaryValues struct {
	MaximumCurvature MaximumCurvature
	MinimumCurvature MinimumCurvature
}

// Boundaries exposes the curvature limits of both bending signs, built
// from the strain limits at every section edge of a cross-section.
type Boundaries struct {
	Positive BoundaryValues
	Negative BoundaryValues
}

// Boundaries determines the governing positive and negative curvature of
// the cross-section from the maximum and minimum admissible strain at
// every member edge.
func (c *CrossSection) Boundaries() (*Boundaries, error) {
	maxStrains, minStrains := c.edgeStrainLimits()

	positive, err := c.governingBoundary(maxStrains, minStrains, true)
	if err != nil {
		return nil, err
	}
	negative, err := c.governingBoundary(maxStrains, minStrains, false)
	if err != nil {
		return nil, err
	}

	return &Boundaries{
		Positive: BoundaryValues{
			MaximumCurvature: positive,
			MinimumCurvature: MinimumCurvature{maxStrains: maxStrains, minStrains: minStrains, positive: true},
		},
		Negative: BoundaryValues{
			MaximumCurvature: negative,
			MinimumCurvature: MinimumCurvature{maxStrains: maxStrains, minStrains: minStrains, positive: false},
		},
	}, nil
}

// edgeStrainLimits collects the maximum and minimum admissible strain at
// both edges of every member section, sorted by position.
func (c *CrossSection) edgeStrainLimits() (maxStrains, minStrains []StrainPosition) {
	for _, s := range c.Sections {
		for _, edge := range s.Geometry.Edges() {
			maxStrains = append(maxStrains, StrainPosition{Strain: s.Material.MaximumStrain(), Position: edge})
			minStrains = append(minStrains, StrainPosition{Strain: s.Material.MinimumStrain(), Position: edge})
		}
	}
	sort.Slice(maxStrains, func(i, j int) bool { return maxStrains[i].Position < maxStrains[j].Position })
	sort.Slice(minStrains, func(i, j int) bool { return minStrains[i].Position < minStrains[j].Position })
	return maxStrains, minStrains
}

// governingBoundary finds the most restrictive curvature of one sign and
// decides which edge of the governing pair starts the search.
//
// For the positive boundary every pair of a maximum-strain point and a
// minimum-strain point strictly above it spans a candidate line; the
// governing curvature is the smallest candidate. The negative boundary is
// symmetric with the strain roles swapped and takes the largest (most
// restrictive negative) candidate.
func (c *CrossSection) governingBoundary(maxStrains, minStrains []StrainPosition, positive bool) (MaximumCurvature, error) {
	lower, upper := maxStrains, minStrains
	if !positive {
		lower, upper = minStrains, maxStrains
	}

	found := false
	var governing float64
	var top, bottom StrainPosition
	for _, bottomPoint := range lower {
		for _, topPoint := range upper {
			if topPoint.Position >= bottomPoint.Position {
				continue
			}
			curvature := lineCurvature(bottomPoint, topPoint)
			if positive != (curvature > 0) || curvature == 0 {
				continue
			}
			restrictive := !found ||
				(positive && curvature < governing) ||
				(!positive && curvature > governing)
			if restrictive {
				found = true
				governing = curvature
				top, bottom = topPoint, bottomPoint
			}
		}
	}
	if !found {
		sign := "positive"
		if !positive {
			sign = "negative"
		}
		return MaximumCurvature{}, fmt.Errorf("cross-section has no admissible %s curvature", sign)
	}

	start, other := c.startBound(governing, top, bottom)
	return MaximumCurvature{
		Curvature:  governing,
		Start:      start,
		Other:      other,
		maxStrains: maxStrains,
		minStrains: minStrains,
	}, nil
}

// startBound decides which edge of the governing pair the iteration of an
// external solver starts from. Both edges are tried as the active
// constraint at half the governing curvature, with the neutral axis
// placed so the tried edge sits exactly at its limiting strain; the trial
// with the smaller absolute total axial force wins.
func (c *CrossSection) startBound(curvature float64, top, bottom StrainPosition) (start, other Bound) {
	half := curvature / 2

	topTrial := NewCurvatureCrossSection(c, half, top.Position-top.Strain/half)
	bottomTrial := NewCurvatureCrossSection(c, half, bottom.Position-bottom.Strain/half)

	topBound := Bound{StrainPosition: top, Curvature: curvature}
	bottomBound := Bound{StrainPosition: bottom, Curvature: curvature}
	if math.Abs(topTrial.TotalAxialForce()) <= math.Abs(bottomTrial.TotalAxialForce()) {
		return topBound, bottomBound
	}
	return bottomBound, topBound
}

func minFloat(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxFloat(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
