// Package config loads runtime settings for the farmplanner CLI and
// server. Values layer, highest priority first: environment variables
// (FARM_ prefix), an optional config file, then built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete runtime configuration.
type Config struct {
	Planner PlannerConfig `mapstructure:"planner"`
	Server  ServerConfig  `mapstructure:"server"`
}

// PlannerConfig controls simulation defaults when flags are absent.
type PlannerConfig struct {
	// Default projection horizon in months.
	ProjectionMonths int `mapstructure:"projection_months" validate:"required,min=1,max=600"`
}

// ServerConfig controls the local inspection server.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// Load reads configuration. configPath may be empty, in which case
// farmplanner.yaml is searched in the working directory and ./configs;
// a missing file is fine and defaults apply.
func Load(configPath string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("farmplanner")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("FARM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("planner.projection_months", 24)
	v.SetDefault("server.port", 8080)
}
