package cmd

import (
	"fmt"

	"github.com/JohannesSchorr/mnkappa/internal/diagram"
	"github.com/JohannesSchorr/mnkappa/internal/section"
	"github.com/spf13/cobra"
)

var (
	curvatureFile        string
	curvatureValue       float64
	curvatureNeutralAxis float64
	curvatureShowDiagram bool
	curvatureExportFile  string
)

var curvatureCmd = &cobra.Command{
	Use:   "curvature",
	Short: "Internal forces under a curvature and neutral axis",
	Long: `Compute axial force and moment of a cross-section under the
linear strain profile

  strain(z) = curvature * (z - neutral_axis)

Every section is split at the material breakpoints its strain profile
crosses, keeping the stress integration piecewise-linear exact.

Examples:
  mnkappa crosssection curvature --file girder.json --curvature 0.0001 --neutral-axis 20
  mnkappa crosssection curvature -f girder.json -k -0.00005 -n 150 --diagram`,
	Run: runCurvature,
}

func init() {
	crosssectionCmd.AddCommand(curvatureCmd)

	curvatureCmd.Flags().StringVarP(&curvatureFile, "file", "f", "", "Path to cross-section JSON file [required]")
	curvatureCmd.MarkFlagRequired("file")
	curvatureCmd.Flags().Float64VarP(&curvatureValue, "curvature", "k", 0, "Imposed curvature (1/mm) [required]")
	curvatureCmd.MarkFlagRequired("curvature")
	curvatureCmd.Flags().Float64VarP(&curvatureNeutralAxis, "neutral-axis", "n", 0, "Neutral axis position (mm) [required]")
	curvatureCmd.MarkFlagRequired("neutral-axis")

	curvatureCmd.Flags().BoolVar(&curvatureShowDiagram, "diagram", false, "Show ASCII strain/stress distribution")
	curvatureCmd.Flags().StringVarP(&curvatureExportFile, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
}

func runCurvature(cmd *cobra.Command, args []string) {
	cross, err := section.LoadFromFile(curvatureFile)
	if err != nil {
		fmt.Printf("Error loading cross-section: %v\n", err)
		return
	}
	if curvatureValue == 0 {
		fmt.Println("Error: curvature must be non-zero; use the strain command for a uniform state")
		return
	}

	computed := section.NewCurvatureCrossSection(cross, curvatureValue, curvatureNeutralAxis)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CROSS-SECTION UNDER CURVATURE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Curvature:    %.8f 1/mm\n", curvatureValue)
	fmt.Printf("  Neutral axis: %.2f mm\n", curvatureNeutralAxis)
	fmt.Printf("  Edges:        %.1f mm (top) to %.1f mm (bottom)\n", cross.Top(), cross.Bottom())
	fmt.Println()

	var members []*section.ComputationSection
	for _, s := range computed.Sections {
		members = append(members, &s.ComputationSection)
	}
	printSectionTable("SECTIONS", members)

	var split []*section.ComputationSection
	for _, s := range computed.SplitSections {
		split = append(split, &s.ComputationSection)
	}
	if len(split) > len(members) {
		printSectionTable("SPLIT SECTIONS (at material breakpoints)", split)
	}

	printTotals(computed)

	data := diagram.DistributionData{
		Top:         cross.Top(),
		Bottom:      cross.Bottom(),
		Curvature:   curvatureValue,
		NeutralAxis: curvatureNeutralAxis,
		Points:      profilePoints(split),
	}
	if curvatureShowDiagram {
		fmt.Println(diagram.PlotStrain(data, 12))
		fmt.Println()
		fmt.Println(diagram.PlotStress(data, 12))
		fmt.Println()
	}
	if curvatureExportFile != "" {
		exportDiagrams(data, curvatureExportFile)
	}
}
