package cmd

import (
	"fmt"

	"github.com/JohannesSchorr/mnkappa/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mnkappa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mnkappa v%s\n", version.Version)
		fmt.Println("Composite Cross-Section Analysis")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
