package config

import "time"

// Config represents the application configuration
type Config struct {
	Server   ServerConfig `mapstructure:"server"`
	QR       QRConfig     `mapstructure:"qr"`
	LogLevel string       `mapstructure:"log_level"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// QRConfig holds the QR rendering configuration
type QRConfig struct {
	ModuleSize int `mapstructure:"module_size"`
	NoteLimit  int `mapstructure:"note_limit"`
}
