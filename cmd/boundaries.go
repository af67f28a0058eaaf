package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/JohannesSchorr/mnkappa/internal/diagram"
	"github.com/JohannesSchorr/mnkappa/internal/section"
	"github.com/spf13/cobra"
)

var boundariesFile string

var boundariesCmd = &cobra.Command{
	Use:   "boundaries",
	Short: "Boundary curvatures from the material strain limits",
	Long: `Determine the maximum positive and negative curvature a
cross-section sustains before any material exceeds its strain limits,
and the governing edge an equilibrium iteration starts from.

Examples:
  mnkappa crosssection boundaries --file girder.json`,
	Run: runBoundaries,
}

func init() {
	crosssectionCmd.AddCommand(boundariesCmd)

	boundariesCmd.Flags().StringVarP(&boundariesFile, "file", "f", "", "Path to cross-section JSON file [required]")
	boundariesCmd.MarkFlagRequired("file")
}

func runBoundaries(cmd *cobra.Command, args []string) {
	cross, err := section.LoadFromFile(boundariesFile)
	if err != nil {
		fmt.Printf("Error loading cross-section: %v\n", err)
		return
	}

	boundaries, err := cross.Boundaries()
	if err != nil {
		fmt.Printf("Error computing boundaries: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BOUNDARY CURVATURES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Edges: %.1f mm (top) to %.1f mm (bottom)\n", cross.Top(), cross.Bottom())
	fmt.Println()

	printBoundary("POSITIVE BOUNDARY", boundaries.Positive)
	printBoundary("NEGATIVE BOUNDARY", boundaries.Negative)

	fmt.Println(diagram.DrawSummaryBox("BOUNDARY CURVATURES", []string{
		fmt.Sprintf("Maximum positive κ = %.8f 1/mm", boundaries.Positive.MaximumCurvature.Curvature),
		fmt.Sprintf("Maximum negative κ = %.8f 1/mm", boundaries.Negative.MaximumCurvature.Curvature),
	}))
}

func printBoundary(title string, values section.BoundaryValues) {
	maximum := values.MaximumCurvature

	fmt.Println(title + ":")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Governing curvature:\t%.8f 1/mm\n", maximum.Curvature)
	fmt.Fprintf(w, "  Start edge:\tstrain %.6f at %.1f mm\n", maximum.Start.Strain, maximum.Start.Position)
	fmt.Fprintf(w, "  Other edge:\tstrain %.6f at %.1f mm\n", maximum.Other.Strain, maximum.Other.Position)
	fmt.Fprintf(w, "  Minimum curvature at start edge:\t%.8f 1/mm\n",
		values.MinimumCurvature.Compute(maximum.Start.StrainPosition))
	w.Flush()
	fmt.Println()
}
