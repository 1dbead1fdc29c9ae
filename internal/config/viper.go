// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory  string `mapstructure:"directory" yaml:"directory"`
		LedgerFile string `mapstructure:"ledger_file" yaml:"ledger_file"`
	} `mapstructure:"data" yaml:"data"`

	Tax struct {
		// ExpectedRate and Tolerance define the accepted effective tax band.
		// Tuned empirically; downstream pass/fail behavior is bound to these values.
		ExpectedRate float64 `mapstructure:"expected_rate" yaml:"expected_rate"`
		Tolerance    float64 `mapstructure:"tolerance" yaml:"tolerance"`
	} `mapstructure:"tax" yaml:"tax"`

	AI struct {
		Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
		Model            string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
		APIKey           string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.receipt-digitizer")
	v.AddConfigPath(".receipt-digitizer")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("RCPT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. API key always comes from the unprefixed env variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "database")
	v.SetDefault("data.ledger_file", "receipts.csv")

	v.SetDefault("tax.expected_rate", 0.08)
	v.SetDefault("tax.tolerance", 0.05)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 10)
	v.SetDefault("ai.fallback_category", "Uncategorized")
}

// validateConfig checks configuration values for consistency
func validateConfig(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}

	if c.Tax.ExpectedRate < 0 || c.Tax.ExpectedRate > 1 {
		return fmt.Errorf("tax expected_rate must be between 0 and 1, got %v", c.Tax.ExpectedRate)
	}
	if c.Tax.Tolerance < 0 || c.Tax.Tolerance > 1 {
		return fmt.Errorf("tax tolerance must be between 0 and 1, got %v", c.Tax.Tolerance)
	}

	if c.AI.Enabled && c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai timeout_seconds must be positive when AI is enabled")
	}

	return nil
}
