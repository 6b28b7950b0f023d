package main

import (
	"fmt"
	"os"

	"github.com/lintang-b-s/roadnet/pkg/commands"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "execute road network commands from a file or stdin",
	Long: `run reads one command per line (addRoad, repairRoad, getRouteDescription, newRoute,
extendRoute, removeRoad, removeRoute or a route definition) and prints "ERROR <line>" to stderr
for every line that fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		interpreter := commands.NewInterpreter(roadmap.NewRoadMap(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
			cfg.UseColor(isTerminal(os.Stderr)))
		return interpreter.Run(in)
	},
}
