package main

import (
	"fmt"
	"os"

	"github.com/aretw0/collage/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "collage",
	Short: "Collage hosts several minigames side by side in one container",
	Long: `Collage embeds independently playable minigame scenes in frames of a single
container and coordinates navigation, input capture and slot interactions between them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commonOptions(cmd *cobra.Command) cli.Options {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{ConfigPath: path, LogLevel: level, Debug: debug}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Layout file (defaults to the built-in demo layout)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the layout)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
