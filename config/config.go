package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"voice-todo/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Voice task parsing
	Parser    ParserConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig controls how transcripts are resolved and judged.
type ParserConfig struct {
	// Timezone is the IANA zone whose wall clock is "now" when a request gives no reference time.
	Timezone            string
	MaxTranscriptLength int
	// AutoAcceptThreshold is the confidence at or above which a parse needs no review.
	AutoAcceptThreshold int
	BatchLimit          int
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/voice-todo/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/voice-todo/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.MaxTranscriptLength = viper.GetInt("parser.max_transcript_length")
	cfg.Parser.AutoAcceptThreshold = viper.GetInt("parser.auto_accept_threshold")
	cfg.Parser.BatchLimit = viper.GetInt("parser.batch_limit")

	// Cache & rate limiting
	cfg.Cache.Size = viper.GetInt("cache.size")
	ttl, err := time.ParseDuration(viper.GetString("cache.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid cache.ttl: %w", err)
	}
	cfg.Cache.TTL = ttl
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", model.EnvironmentDevelopment)
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.max_transcript_length", 1000)
	viper.SetDefault("parser.auto_accept_threshold", 75)
	viper.SetDefault("parser.batch_limit", 20)

	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("cache.ttl", "10m")
	viper.SetDefault("rate_limit.per_min", 120)
}

// validate checks values that would otherwise fail later at startup or silently misbehave.
func (c *Config) validate() error {
	if !model.IsKnownEnvironment(c.Environment.Name) {
		return fmt.Errorf("unknown environment.name %q", c.Environment.Name)
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be in 1..65535, got %d", c.HTTPServer.Port)
	}

	if _, err := time.LoadLocation(c.Parser.Timezone); err != nil {
		return fmt.Errorf("invalid parser.timezone %q: %w", c.Parser.Timezone, err)
	}
	if c.Parser.MaxTranscriptLength <= 0 {
		return fmt.Errorf("parser.max_transcript_length must be positive")
	}
	if c.Parser.AutoAcceptThreshold < 0 || c.Parser.AutoAcceptThreshold > 100 {
		return fmt.Errorf("parser.auto_accept_threshold must be in 0..100, got %d", c.Parser.AutoAcceptThreshold)
	}
	if c.Parser.BatchLimit <= 0 {
		return fmt.Errorf("parser.batch_limit must be positive")
	}

	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive")
	}
	return nil
}
