package main

import (
	"os"

	"github.com/lintang-b-s/roadnet/pkg/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "roadnet",
	Short: "national road network and route registry",
	Long: `roadnet keeps cities, two way roads (length, built year) and up to 999 routes.
Every route is the unique shortest path between its ends, newer roads win ties.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().String("config", "", "path to roadnet.toml")
	rootCmd.PersistentFlags().String("color", "", "colorize ERROR lines (auto|on|off), overrides config")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig. baca file config lalu override dengan flag yang di set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return config.Config{}, err
	}
	if colorFlag != "" {
		cfg.Protocol.Color = colorFlag
	}
	if cmd.Flags().Lookup("listenaddr") != nil && cmd.Flags().Changed("listenaddr") {
		cfg.Server.ListenAddr, _ = cmd.Flags().GetString("listenaddr")
	}
	return cfg, cfg.Validate()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
