package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of budgetsim`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("budgetsim v%s\n", version)
		fmt.Println("Deterministic personal finance simulator")
		fmt.Println("https://github.com/rustyeddy/budgetsim")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
