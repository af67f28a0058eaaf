package geometry

import "math"

// Rectangle is a shape of constant width spanning from Top to Bottom.
type Rectangle struct {
	Top    float64 // upper edge position (mm)
	Bottom float64 // lower edge position (mm)
	Width  float64 // constant width (mm)
}

// NewRectangle creates a rectangle, swapping the edges if given upside down.
func NewRectangle(top, bottom, width float64) Rectangle {
	if top > bottom {
		top, bottom = bottom, top
	}
	return Rectangle{Top: top, Bottom: bottom, Width: width}
}

func (r Rectangle) Area() float64 {
	return (r.Bottom - r.Top) * r.Width
}

func (r Rectangle) Centroid() float64 {
	return (r.Top + r.Bottom) / 2
}

func (r Rectangle) Edges() []float64 {
	return []float64{r.Top, r.Bottom}
}

func (r Rectangle) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rectangle) WidthSlope() float64 {
	return 0
}

func (r Rectangle) WidthInterception() float64 {
	return r.Width
}

func (r Rectangle) Split(positions []float64) []Geometry {
	cuts := splitPositions(positions, r.Top, r.Bottom)

	var parts []Geometry
	top := r.Top
	for _, cut := range cuts {
		parts = append(parts, Rectangle{Top: top, Bottom: cut, Width: r.Width})
		top = cut
	}
	parts = append(parts, Rectangle{Top: top, Bottom: r.Bottom, Width: r.Width})
	return parts
}

// Trapezoid is a shape whose width varies linearly from TopWidth at the
// upper edge to BottomWidth at the lower edge.
type Trapezoid struct {
	Top         float64 // upper edge position (mm)
	Bottom      float64 // lower edge position (mm)
	TopWidth    float64 // width at the upper edge (mm)
	BottomWidth float64 // width at the lower edge (mm)
}

func (t Trapezoid) Area() float64 {
	return t.Height() * (t.TopWidth + t.BottomWidth) / 2
}

func (t Trapezoid) Centroid() float64 {
	// distance of the centroid from the upper edge of a trapezoid:
	// h/3 * (top + 2*bottom) / (top + bottom)
	return t.Top + t.Height()/3*(t.TopWidth+2*t.BottomWidth)/(t.TopWidth+t.BottomWidth)
}

func (t Trapezoid) Edges() []float64 {
	return []float64{t.Top, t.Bottom}
}

func (t Trapezoid) Height() float64 {
	return t.Bottom - t.Top
}

func (t Trapezoid) WidthSlope() float64 {
	return (t.BottomWidth - t.TopWidth) / t.Height()
}

func (t Trapezoid) WidthInterception() float64 {
	return t.TopWidth - t.WidthSlope()*t.Top
}

// WidthAt returns the interpolated width at a vertical position inside the span.
func (t Trapezoid) WidthAt(position float64) float64 {
	return t.WidthSlope()*position + t.WidthInterception()
}

func (t Trapezoid) Split(positions []float64) []Geometry {
	cuts := splitPositions(positions, t.Top, t.Bottom)

	var parts []Geometry
	top, topWidth := t.Top, t.TopWidth
	for _, cut := range cuts {
		cutWidth := t.WidthAt(cut)
		parts = append(parts, Trapezoid{Top: top, Bottom: cut, TopWidth: topWidth, BottomWidth: cutWidth})
		top, topWidth = cut, cutWidth
	}
	parts = append(parts, Trapezoid{Top: top, Bottom: t.Bottom, TopWidth: topWidth, BottomWidth: t.BottomWidth})
	return parts
}

// Circle is a reinforcement bar treated as a point shape: its full area acts
// at its centre position and it never splits.
type Circle struct {
	Position float64 // centre position (mm)
	Diameter float64 // bar diameter (mm)
}

func (c Circle) Area() float64 {
	return math.Pi * c.Diameter * c.Diameter / 4
}

func (c Circle) Centroid() float64 {
	return c.Position
}

func (c Circle) Edges() []float64 {
	return []float64{c.Position}
}

func (c Circle) Height() float64 {
	return 0
}

func (c Circle) WidthSlope() float64 {
	return 0
}

func (c Circle) WidthInterception() float64 {
	return 0
}

func (c Circle) Split([]float64) []Geometry {
	return []Geometry{c}
}
