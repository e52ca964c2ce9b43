package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", "5s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("QR_MODULE_SIZE", 10)
	v.SetDefault("QR_NOTE_LIMIT", 500)

	// Define environment variables
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("SERVER_PORT")
	v.BindEnv("SERVER_READ_TIMEOUT")
	v.BindEnv("SERVER_WRITE_TIMEOUT")
	v.BindEnv("SERVER_SHUTDOWN_TIMEOUT")
	v.BindEnv("QR_MODULE_SIZE")
	v.BindEnv("QR_NOTE_LIMIT")

	readTimeout, err := time.ParseDuration(v.GetString("SERVER_READ_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(v.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		LogLevel: v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		QR: QRConfig{
			ModuleSize: v.GetInt("QR_MODULE_SIZE"),
			NoteLimit:  v.GetInt("QR_NOTE_LIMIT"),
		},
	}

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("SERVER_PORT is required")
	}

	if cfg.QR.ModuleSize < 1 || cfg.QR.ModuleSize > 50 {
		return fmt.Errorf("QR_MODULE_SIZE must be between 1 and 50, got %d", cfg.QR.ModuleSize)
	}

	if cfg.QR.NoteLimit < 1 {
		return fmt.Errorf("QR_NOTE_LIMIT must be positive, got %d", cfg.QR.NoteLimit)
	}

	return nil
}
