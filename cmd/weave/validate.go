package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weave-ml/weave/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph.yaml>",
	Short: "Check a graph configuration for consistency",
	Long:  `Loads an exported graph configuration and reports undeclared modules, unknown ports or an invalid operation mode.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Graph configuration is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}
