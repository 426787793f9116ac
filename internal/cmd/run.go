package cmd

import (
	"fmt"
	"os"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/hoppxi/svgdark/internal/manager"
	"github.com/hoppxi/svgdark/internal/remap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate dark variants for every SVG in the asset directory",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := manager.FromViper(manager.Config.Load())

		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			cfg.Dir = dir
		}
		if choose, _ := cmd.Flags().GetBool("choose"); choose {
			dir, err := zenity.SelectFile(
				zenity.Title("Select asset directory"),
				zenity.Directory(),
			)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			cfg.Dir = dir
		}

		written, err := remap.Process(cfg)
		for _, path := range written {
			fmt.Println("Wrote", path)
		}
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d dark variant(s) in %s\n", len(written), cfg.Dir)
	},
}

func init() {
	runCmd.Flags().String("dir", "", "Asset directory (overrides config)")
	runCmd.Flags().Bool("choose", false, "Pick the asset directory from a file dialog")
}
