// Package config loads service settings from environment variables
// (optionally a .env file) via viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr      string `mapstructure:"HTTP_ADDR"`
	QRDefaultSize int    `mapstructure:"QR_DEFAULT_SIZE"`
	QRMaxSize     int    `mapstructure:"QR_MAX_SIZE"`
}

// Load reads configuration from the environment, falling back to an
// optional .env file in path. Missing .env is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("QR_DEFAULT_SIZE", 256)
	v.SetDefault("QR_MAX_SIZE", 1024)

	for _, key := range []string{"HTTP_ADDR", "QR_DEFAULT_SIZE", "QR_MAX_SIZE"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.QRDefaultSize <= 0 {
		cfg.QRDefaultSize = 256
	}
	if cfg.QRMaxSize < cfg.QRDefaultSize {
		cfg.QRMaxSize = cfg.QRDefaultSize
	}
	return &cfg, nil
}
