package main

import (
	"context"
	"os"

	"github.com/aretw0/collage/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a single scene standalone",
	Long:  `Loads one scene from the layout's library as the top-level scene, without a container. Every operation resolves to the global context.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()
		err := cli.Play(sigCtx, runOptions(cmd), args[0], os.Stdin, os.Stdout)
		cli.ReportSignal(os.Stderr, sigCtx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolP("watch", "w", false, "Reload the scene when the layout file changes")
	playCmd.Flags().BoolP("quiet", "q", false, "Skip status messages")
}
