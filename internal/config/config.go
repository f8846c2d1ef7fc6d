package config

import "github.com/spf13/viper"

// Config holds the runtime defaults for both calculators. Values are
// populated from built-in defaults, UNBIND_* environment variables, and
// CLI flags; no configuration file is read — the tools are single-shot.
type Config struct {
	DefaultDensity  float64 `mapstructure:"default_density"`
	DefaultEpsilon  float64 `mapstructure:"default_epsilon"`
	DefaultBody     string  `mapstructure:"default_body"`
	DefaultMaterial string  `mapstructure:"default_material"`
	LethalDoseGy    float64 `mapstructure:"lethal_dose_gy"`
	Verbose         bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by environment or flags.
func Load() Config {
	viper.SetDefault("default_density", 3000.0)
	viper.SetDefault("default_epsilon", 1.0)
	viper.SetDefault("default_body", "")
	viper.SetDefault("default_material", "")
	viper.SetDefault("lethal_dose_gy", 8.0)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
