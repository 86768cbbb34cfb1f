package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/collage"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of collage",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("collage version %s\n", strings.TrimSpace(collage.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
