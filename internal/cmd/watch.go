package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hoppxi/svgdark/internal/manager"
	"github.com/hoppxi/svgdark/internal/remap"
	"github.com/hoppxi/svgdark/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate dark variants whenever the asset directory changes",
	Run: func(cmd *cobra.Command, args []string) {
		v := manager.Config.Load()
		dirFlag, _ := cmd.Flags().GetString("dir")

		// Config can change while watching; re-derive it per rebuild so a
		// palette edit in svgdark.yaml takes effect without a restart.
		current := func() remap.Config {
			cfg := manager.FromViper(v)
			if dirFlag != "" {
				cfg.Dir = dirFlag
			}
			return cfg
		}

		cfg := current()
		if _, err := remap.Process(cfg); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}

		w, err := watch.New(cfg.Dir)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		defer w.Close()

		if v.ConfigFileUsed() != "" {
			manager.Config.Watch(func() {
				log.Println("Config changed, palette reloaded")
			})
		}

		go func() {
			for range w.Rebuild() {
				written, err := remap.Process(current())
				if err != nil {
					log.Println("Rebuild failed:", err)
					continue
				}
				for _, path := range written {
					log.Println("Wrote", path)
				}
			}
		}()

		log.Printf("Watching %s. Press Ctrl+C to stop.", cfg.Dir)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		fmt.Println("\nStopping watcher...")
	},
}

func init() {
	watchCmd.Flags().String("dir", "", "Asset directory (overrides config)")
}
