package geometry

import "sort"

// Geometry describes a shape occupying a vertical span of a cross-section.
// Vertical positions increase downward, so the top edge carries the smaller
// coordinate. Within the span the width is an affine function of position:
//
//	width(z) = WidthSlope()*z + WidthInterception()
//
// A zero-height shape (e.g. a reinforcement bar treated as a point) reports
// a single edge position and zero height.
type Geometry interface {
	// Area returns the shape area (mm²)
	Area() float64

	// Centroid returns the first-moment-weighted mean position (mm)
	Centroid() float64

	// Edges returns the vertical edge positions in mm, top edge first.
	// Zero-height shapes return a single position.
	Edges() []float64

	// Height returns the vertical extent of the shape (mm)
	Height() float64

	// WidthSlope returns the slope of the affine width model (mm/mm)
	WidthSlope() float64

	// WidthInterception returns the intercept of the affine width model (mm)
	WidthInterception() float64

	// Split cuts the shape at the given vertical positions and returns the
	// ordered sub-shapes, top first. Positions outside the open span are
	// ignored; a zero-height shape returns itself unchanged.
	Split(positions []float64) []Geometry
}

// splitPositions filters the cut positions to those strictly inside the span
// and returns them sorted ascending without duplicates.
func splitPositions(positions []float64, top, bottom float64) []float64 {
	var inside []float64
	for _, p := range positions {
		if p > top && p < bottom {
			inside = append(inside, p)
		}
	}
	sort.Float64s(inside)

	var unique []float64
	for i, p := range inside {
		if i == 0 || p != inside[i-1] {
			unique = append(unique, p)
		}
	}
	return unique
}
