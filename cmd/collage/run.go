package main

import (
	"context"
	"os"

	"github.com/aretw0/collage/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the container interactively",
	Long:  `Builds the container from the layout and reads console commands from stdin. Type 'help' once started.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()
		err := cli.Run(sigCtx, runOptions(cmd), os.Stdin, os.Stdout)
		cli.ReportSignal(os.Stderr, sigCtx)
		return err
	},
}

func runOptions(cmd *cobra.Command) cli.RunOptions {
	watch, _ := cmd.Flags().GetBool("watch")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return cli.RunOptions{
		Options: commonOptions(cmd),
		Watch:   watch,
		Quiet:   quiet,
		Prompt:  cli.IsTerminal(os.Stdin),
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("watch", "w", false, "Reload scenes when the layout file changes")
	runCmd.Flags().BoolP("quiet", "q", false, "Skip the banner and status messages")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
