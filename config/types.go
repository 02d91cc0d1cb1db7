package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	GIE       GIEConfig         `mapstructure:"gie"`
	Endpoints map[string]string `mapstructure:"endpoints"`
	Logging   LoggingConfig     `mapstructure:"logging"`
}

// GIEConfig holds the GIE API credential and transport settings
type GIEConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
