package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ProfilePoint is one sampled point of a strain and stress distribution.
type ProfilePoint struct {
	Position float64 // mm, increasing downward
	Strain   float64
	Stress   float64 // N/mm²
}

// DistributionData holds a computed strain/stress distribution over the
// depth of a cross-section, ordered top edge first.
type DistributionData struct {
	Name string

	Top    float64 // mm
	Bottom float64 // mm

	// Curvature and NeutralAxis describe the imposed profile; both are
	// zero for a uniform strain state.
	Curvature   float64
	NeutralAxis float64

	Points []ProfilePoint
}

// PlotStress renders the stress distribution over the section depth as a
// terminal graph, top edge on the left.
func PlotStress(data DistributionData, height int) string {
	series := make([]float64, 0, len(data.Points))
	for _, p := range data.Points {
		series = append(series, p.Stress)
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption("stress (N/mm²), top → bottom"),
	)
}

// PlotStrain renders the strain distribution over the section depth as a
// terminal graph, top edge on the left.
func PlotStrain(data DistributionData, height int) string {
	series := make([]float64, 0, len(data.Points))
	for _, p := range data.Points {
		series = append(series, p.Strain)
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption("strain, top → bottom"),
	)
}

// DrawSummaryBox frames a title and result lines in a box for terminal
// output.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
