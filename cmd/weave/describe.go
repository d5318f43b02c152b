package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weave-ml/weave/config"
)

var describeCmd = &cobra.Command{
	Use:   "describe <graph.yaml>",
	Short: "Print a summary of a graph configuration",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDescribe(args[0]); err != nil {
			fmt.Printf("Describe failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("graph %q [%s]\n", cfg.Name, cfg.Mode)
	fmt.Printf("modules (%d):\n", len(cfg.Modules))
	for _, m := range cfg.Modules {
		fmt.Printf("  %s  in=%d out=%d\n", m.Name, len(m.InputPorts), len(m.OutputPorts))
	}
	fmt.Printf("steps (%d):\n", len(cfg.Steps))
	for i, s := range cfg.Steps {
		fmt.Printf("  %d: %s", i, s.Module)
		for port, src := range s.Args {
			fmt.Printf(" %s<-%s", port, src)
		}
		fmt.Println()
	}
	if len(cfg.Outputs) > 0 {
		fmt.Printf("outputs (%d):\n", len(cfg.Outputs))
		for _, o := range cfg.Outputs {
			fmt.Printf("  %s <- %s\n", o.Name, o.Source)
		}
	}
	return nil
}
