package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the subjunto version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("subjunto %s\n", version)
	},
}
