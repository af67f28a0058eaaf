package cmd

import (
	"fmt"
	"os"

	"github.com/JohannesSchorr/mnkappa/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mnkappa",
	Short: "Strain-based cross-section analysis",
	Long: `mnkappa - composite cross-section analysis

A CLI tool computing the internal forces of composite structural
cross-sections under an imposed deformation state.

The engine integrates the stress field of every section of a
cross-section in closed form, either for a uniform strain or for a
linear strain profile given by a curvature and a neutral axis
position, and determines the boundary curvatures the cross-section
sustains before any material exceeds its strain limits.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   mnkappa v%-47s║\n", version.Version)
		fmt.Println("  ║   Composite Cross-Section Analysis                        ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Internal forces under a uniform imposed strain")
		fmt.Println("    • Internal forces under a curvature and neutral axis")
		fmt.Println("    • Boundary curvatures from the material strain limits")
		fmt.Println("    • Strain and stress distribution diagrams")
		fmt.Println()
		fmt.Println("  Use 'mnkappa --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
