package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Dataset DatasetConfig `mapstructure:"dataset"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

// DatasetConfig describes where the transaction dataset lives.
// Source is "csv" (default) or "mysql"; Path is only used for csv.
type DatasetConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.shopsight/")
	v.AddConfigPath("/etc/shopsight/")

	// Enable environment variable override with SHOPSIGHT_ prefix
	v.SetEnvPrefix("SHOPSIGHT")
	v.AutomaticEnv()

	// Defaults keep the CLI usable without a config file
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("dataset.source", "csv")
	v.SetDefault("dataset.path", "customer_shopping_behavior.csv")
	v.SetDefault("db.maxOpenConns", 10)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine, defaults and env vars cover it
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
