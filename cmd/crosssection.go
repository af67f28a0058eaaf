package cmd

import (
	"github.com/spf13/cobra"
)

var crosssectionCmd = &cobra.Command{
	Use:   "crosssection",
	Short: "Cross-section internal force computation",
	Long: `Compute internal forces of a composite cross-section defined
in a JSON file.

The cross-section is an ordered list of sections, each pairing a
shape with a material law. Vertical positions increase downward, so
the top edge carries the smaller coordinate.

Subcommands:
  strain     - Internal forces under a uniform imposed strain
  curvature  - Internal forces under a curvature and neutral axis
  boundaries - Boundary curvatures from the material strain limits

Example JSON file structure:
{
  "name": "Composite girder",
  "sections": [
    {
      "shape": {"type": "rectangle", "top": 0, "bottom": 100, "width": 2000},
      "material": {"type": "concrete", "fc": 30}
    },
    {
      "shape": {"type": "circle", "position": 50, "diameter": 12},
      "material": {"type": "reinforcement", "fy": 500, "fu": 550, "failure_strain": 0.025}
    },
    {
      "shape": {"type": "rectangle", "top": 100, "bottom": 400, "width": 10},
      "material": {"type": "steel", "fy": 355, "fu": 400, "failure_strain": 0.15}
    }
  ]
}`,
}

func init() {
	rootCmd.AddCommand(crosssectionCmd)
}
