package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoppxi/svgdark/internal/manager"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the active replacement table and asset directory",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := manager.FromViper(manager.Config.Load())

		fmt.Println("Directory:", cfg.Dir)
		fmt.Println("Replacements:")
		for _, rule := range cfg.Mapping {
			fmt.Printf("  %s -> %s\n", rule.From, rule.To)
		}
	},
}
