package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Storage Storage `mapstructure:"storage"`
	Log     Log     `mapstructure:"log"`
	UI      UI      `mapstructure:"ui"`
	Dice    Dice    `mapstructure:"dice"`
}

type Storage struct {
	Mode       string `mapstructure:"mode"` // json | sqlite | memory
	Dir        string `mapstructure:"dir"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type UI struct {
	Theme string `mapstructure:"theme"` // classic | neon | mono
}

type Dice struct {
	Seed int64 `mapstructure:"seed"` // 0 picks a random seed
}

// Load reads config from the given YAML file path. An empty path uses
// defaults plus TABLETOP_* environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("tabletop")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("storage.mode", "json")
	v.SetDefault("storage.dir", ".tabletop")
	v.SetDefault("storage.sqlite_path", ".tabletop/tabletop.db")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("dice.seed", 0)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
