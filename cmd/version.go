package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release time.
var (
	version = "0.1.0"
	commit  = "dev"
)

// repoSlug is the GitHub repository upgrades are pulled from.
const repoSlug = "petal-dev/petal"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the petal version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("petal %s (%s) %s/%s\n", version, commit, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
