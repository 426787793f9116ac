package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hoppxi/svgdark/internal/remap"
)

type fileConfig struct {
	Dir          string     `yaml:"dir"`
	Replacements []fileRule `yaml:"replacements"`
}

type fileRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a svgdark.yaml seeded with the built-in defaults",
	Run: func(cmd *cobra.Command, args []string) {
		reader := bufio.NewReader(os.Stdin)

		if _, err := os.Stat("svgdark.yaml"); err == nil {
			if !confirm(reader, "svgdark.yaml already exists. Overwrite?") {
				return
			}
		}

		conf := fileConfig{}
		conf.Dir = prompt(reader, "Asset directory", remap.DefaultConfig().Dir)
		for _, rule := range remap.DefaultMapping() {
			conf.Replacements = append(conf.Replacements, fileRule{From: rule.From, To: rule.To})
		}

		d, _ := yaml.Marshal(&conf)
		if err := os.WriteFile("svgdark.yaml", d, 0644); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}

		fmt.Println("Wrote svgdark.yaml. Edit the replacements list to change the palette.")
	},
}

func prompt(r *bufio.Reader, label, defaultValue string) string {
	fmt.Printf("%s [%s]: ", label, defaultValue)
	input, _ := r.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}

func confirm(r *bufio.Reader, message string) bool {
	fmt.Printf("%s (y/N): ", message)
	input, _ := r.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
