package manager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/hoppxi/svgdark/internal/remap"
)

var (
	once sync.Once
	v    *viper.Viper
)

type ConfigManager struct{}

var Config = &ConfigManager{}

// Load reads svgdark.yaml from the working directory or the user config
// dir. A missing file is fine: the built-in palette and ./res apply.
func (c *ConfigManager) Load() *viper.Viper {
	once.Do(func() {
		v = viper.New()

		v.SetConfigName("svgdark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "svgdark"))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				panic(fmt.Errorf("failed to read config: %w", err))
			}
		}
	})

	return v
}

func (c *ConfigManager) Watch(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange()
	})
}

// FromViper merges file settings over the built-in defaults. Empty or
// absent keys keep their defaults.
func FromViper(v *viper.Viper) remap.Config {
	cfg := remap.DefaultConfig()

	if dir := v.GetString("dir"); dir != "" {
		cfg.Dir = dir
	}

	var rules []remap.Rule
	if err := v.UnmarshalKey("replacements", &rules); err == nil && len(rules) > 0 {
		cfg.Mapping = remap.Mapping(rules)
	}

	return cfg
}
