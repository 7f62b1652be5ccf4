package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load resolves the configuration from a parsed flag set. There is no config file and
// no environment lookup; viper only layers the flag values over the defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	bindErr := viperCfg.BindPFlags(flags)
	if bindErr != nil {
		return nil, fmt.Errorf("bind flags: %w", bindErr)
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("path", DefaultPath)
	viperCfg.SetDefault("email", []string{})
	viperCfg.SetDefault("format", DefaultFormat)
	viperCfg.SetDefault("mode", DefaultMode)
	viperCfg.SetDefault("self-trailers", DefaultSelfTrailers)
}
