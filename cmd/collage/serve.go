package main

import (
	"context"
	"os"

	"github.com/aretw0/collage/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the container headless with the admin API",
	Long:  `Runs the host loop without a console and exposes the frame registry, focus control, an SSE event stream and Prometheus metrics over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()
		err := cli.Serve(sigCtx, cli.ServeOptions{Options: commonOptions(cmd), Addr: addr}, os.Stdout)
		cli.ReportSignal(os.Stderr, sigCtx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (defaults to the layout's admin.addr)")
}
