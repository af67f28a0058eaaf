package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/JohannesSchorr/mnkappa/internal/diagram"
	"github.com/JohannesSchorr/mnkappa/internal/material"
	"github.com/JohannesSchorr/mnkappa/internal/section"
)

// printSectionTable writes the per-section results of a computation as an
// aligned table.
func printSectionTable(title string, sections []*section.ComputationSection) {
	fmt.Println(title + ":")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tType\tEdges (mm)\tStrains\tStresses (N/mm²)\tN (N)\tM (Nmm)\n")
	fmt.Fprintf(w, "  ─\t────\t──────────\t───────\t────────────────\t─────\t───────\n")
	for i, s := range sections {
		edges := s.Section.Geometry.Edges()
		edgeText := fmt.Sprintf("%.1f", edges[0])
		strainText := fmt.Sprintf("%.6f", s.EdgeStrains[0])
		stressText := fmt.Sprintf("%.2f", s.EdgeStresses[0])
		if len(edges) == 2 {
			edgeText += fmt.Sprintf(" / %.1f", edges[1])
			strainText += fmt.Sprintf(" / %.6f", s.EdgeStrains[1])
			stressText += fmt.Sprintf(" / %.2f", s.EdgeStresses[1])
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%.2f\t%.2f\n",
			i+1, s.Section.Material.SectionType(), edgeText, strainText, stressText,
			s.AxialForce, s.Moment)
	}
	w.Flush()
	fmt.Println()
}

// totals is the subset of both computed cross-section variants the report
// blocks need.
type totals interface {
	TotalAxialForce() float64
	TotalMoment() float64
	AxialForceByType(material.SectionType) float64
	MomentByType(material.SectionType) float64
}

func printTotals(computed totals) {
	fmt.Println("INTERNAL FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Girder axial force:\t%.2f N\n", computed.AxialForceByType(material.Girder))
	fmt.Fprintf(w, "  Slab axial force:\t%.2f N\n", computed.AxialForceByType(material.Slab))
	fmt.Fprintf(w, "  Girder moment:\t%.2f Nmm\n", computed.MomentByType(material.Girder))
	fmt.Fprintf(w, "  Slab moment:\t%.2f Nmm\n", computed.MomentByType(material.Slab))
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("TOTALS", []string{
		fmt.Sprintf("Axial force N = %.2f N", computed.TotalAxialForce()),
		fmt.Sprintf("Moment      M = %.2f Nmm", computed.TotalMoment()),
	}))
}

// profilePoints samples the edges of the computed sections into a
// distribution ordered by position.
func profilePoints(sections []*section.ComputationSection) []diagram.ProfilePoint {
	var points []diagram.ProfilePoint
	for _, s := range sections {
		for i, edge := range s.Section.Geometry.Edges() {
			points = append(points, diagram.ProfilePoint{
				Position: edge,
				Strain:   s.EdgeStrains[i],
				Stress:   s.EdgeStresses[i],
			})
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Position < points[j].Position })
	return points
}

// exportDiagrams writes the strain and stress distribution next to each
// other, deriving the stress filename from the given one.
func exportDiagrams(data diagram.DistributionData, filename string) {
	if err := diagram.ExportStrainDiagram(data, filename); err != nil {
		fmt.Printf("Error exporting strain diagram: %v\n", err)
		return
	}
	fmt.Printf("Strain diagram exported to: %s\n", filename)

	stressFile := "stress_" + filename
	if err := diagram.ExportStressDiagram(data, stressFile); err != nil {
		fmt.Printf("Error exporting stress diagram: %v\n", err)
		return
	}
	fmt.Printf("Stress diagram exported to: %s\n", stressFile)
}
