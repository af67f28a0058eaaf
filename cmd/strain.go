package cmd

import (
	"fmt"

	"github.com/JohannesSchorr/mnkappa/internal/diagram"
	"github.com/JohannesSchorr/mnkappa/internal/section"
	"github.com/spf13/cobra"
)

var (
	strainFile        string
	strainValue       float64
	strainShowDiagram bool
	strainExportFile  string
)

var strainCmd = &cobra.Command{
	Use:   "strain",
	Short: "Internal forces under a uniform imposed strain",
	Long: `Compute axial force and moment of a cross-section whose every
fibre carries the same imposed strain.

Examples:
  mnkappa crosssection strain --file girder.json --strain 0.001
  mnkappa crosssection strain -f girder.json -s -0.0005 --diagram`,
	Run: runStrain,
}

func init() {
	crosssectionCmd.AddCommand(strainCmd)

	strainCmd.Flags().StringVarP(&strainFile, "file", "f", "", "Path to cross-section JSON file [required]")
	strainCmd.MarkFlagRequired("file")
	strainCmd.Flags().Float64VarP(&strainValue, "strain", "s", 0, "Uniform imposed strain [required]")
	strainCmd.MarkFlagRequired("strain")

	strainCmd.Flags().BoolVar(&strainShowDiagram, "diagram", false, "Show ASCII strain/stress distribution")
	strainCmd.Flags().StringVarP(&strainExportFile, "output", "o", "", "Export diagrams to file (png, svg, pdf)")
}

func runStrain(cmd *cobra.Command, args []string) {
	cross, err := section.LoadFromFile(strainFile)
	if err != nil {
		fmt.Printf("Error loading cross-section: %v\n", err)
		return
	}

	computed := section.NewStrainCrossSection(cross, strainValue)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CROSS-SECTION UNDER UNIFORM STRAIN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Strain: %.6f\n", strainValue)
	fmt.Printf("  Edges:  %.1f mm (top) to %.1f mm (bottom)\n", cross.Top(), cross.Bottom())
	fmt.Println()

	var base []*section.ComputationSection
	for _, s := range computed.Sections {
		base = append(base, &s.ComputationSection)
	}
	printSectionTable("SECTIONS", base)
	printTotals(computed)

	data := diagram.DistributionData{
		Top:    cross.Top(),
		Bottom: cross.Bottom(),
		Points: profilePoints(base),
	}
	if strainShowDiagram {
		fmt.Println(diagram.PlotStress(data, 12))
		fmt.Println()
	}
	if strainExportFile != "" {
		exportDiagrams(data, strainExportFile)
	}
}
