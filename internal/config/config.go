package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings. Theme is the raw session flag handed
// to the theme resolver, not a validated value.
type UIConfig struct {
	Theme           string
	WordWrap        int `mapstructure:"word_wrap"`
	MinRenderHeight int `mapstructure:"min_render_height"`
}

// Load reads configuration from file and env. Env var overrides use prefix SSBROWSE_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "ssbrowse", "ssbrowse.db"))
	v.SetDefault("ui.theme", "")
	v.SetDefault("ui.word_wrap", 80)
	v.SetDefault("ui.min_render_height", 18)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SSBROWSE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ssbrowse"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SSBROWSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.WordWrap < 0 {
		c.UI.WordWrap = 0
	}
	if c.UI.MinRenderHeight < 1 {
		c.UI.MinRenderHeight = 1
	}
	return c, nil
}

// SessionArgs exposes the request-scoped flags consumed by the theme
// resolver. Only the theme flag exists today.
func (c Config) SessionArgs() map[string]string {
	args := map[string]string{}
	if t := strings.TrimSpace(c.UI.Theme); t != "" {
		args["theme"] = t
	}
	return args
}
