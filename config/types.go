package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	XIVAPI  XIVAPIConfig  `mapstructure:"xivapi"`
	Market  MarketConfig  `mapstructure:"market"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// XIVAPIConfig holds XIVAPI connection details
type XIVAPIConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// MarketConfig contains market board query settings
type MarketConfig struct {
	MaxHistory  int `mapstructure:"max_history"`
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
