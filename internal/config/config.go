package config

import (
	"fmt"
	"time"

	"teampulse-backend/internal/database/models"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Session configuration
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	SessionCookie   string `mapstructure:"SESSION_COOKIE_NAME"`
	CookieSecure    bool   `mapstructure:"COOKIE_SECURE"`

	// Sentiment score mapping (0-100 scale used for trend derivation)
	ScoreHappy   int `mapstructure:"SENTIMENT_SCORE_HAPPY"`
	ScoreNeutral int `mapstructure:"SENTIMENT_SCORE_NEUTRAL"`
	ScoreSad     int `mapstructure:"SENTIMENT_SCORE_SAD"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "teampulse")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Session defaults
	viper.SetDefault("SESSION_TTL_HOURS", 168) // 7 days
	viper.SetDefault("SESSION_COOKIE_NAME", "teampulse_session")
	viper.SetDefault("COOKIE_SECURE", false)

	// Sentiment score defaults: categorical logs map onto a 0-100 scale
	viper.SetDefault("SENTIMENT_SCORE_HAPPY", 100)
	viper.SetDefault("SENTIMENT_SCORE_NEUTRAL", 50)
	viper.SetDefault("SENTIMENT_SCORE_SAD", 0)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Environment == "production" && !config.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be enabled in production")
	}

	if config.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	for _, score := range []int{config.ScoreHappy, config.ScoreNeutral, config.ScoreSad} {
		if score < 0 || score > 100 {
			return fmt.Errorf("sentiment scores must be within 0-100")
		}
	}

	return nil
}

// ScoreFor maps a categorical sentiment onto the configured 0-100 scale
func (c *Config) ScoreFor(s models.Sentiment) int {
	switch s {
	case models.SentimentHappy:
		return c.ScoreHappy
	case models.SentimentSad:
		return c.ScoreSad
	default:
		return c.ScoreNeutral
	}
}

// SessionTTL returns the configured session lifetime
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
