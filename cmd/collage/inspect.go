package main

import (
	"os"

	"github.com/aretw0/collage/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Describe the layout: frames and scene trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		opts := commonOptions(cmd)
		if mermaid {
			return cli.InspectGraph(opts, os.Stdout)
		}
		return cli.Inspect(opts.ConfigPath, raw, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
	inspectCmd.Flags().Bool("mermaid", false, "Print the container's node tree as a Mermaid flowchart")
}
