package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the service.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
	LogDir       string `mapstructure:"LOG_DIR"`
}

// LoadConfig reads configuration from an optional app.env file in path and
// from the process environment. Environment variables win over file values.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("DATABASE_URL", "postgres://localhost:5432/customers?sslmode=disable")
	viper.SetDefault("CLIENT_ORIGIN", "http://localhost:3000")
	viper.SetDefault("LOG_DIR", "logs")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing app.env is fine; the defaults and environment carry it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
