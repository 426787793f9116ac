package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "svgdark",
	Version: Version,
	Short:   "Generate dark-mode variants of SVG assets",
	Long:    "Svgdark rewrites the color codes of every SVG in an asset directory and writes each result next to its source as <name>-dark.svg",
	Run: func(cmd *cobra.Command, args []string) {
		runCmd.Run(runCmd, args) // bare `svgdark` is a plain run
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tableCmd)
}
