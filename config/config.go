package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Decision core specifics
	Classifier ClassifierConfig
	Offline    OfflineConfig
	Decay      DecayConfig
	Pattern    PatternConfig
	Session    SessionConfig

	// LLM Provider Abstraction
	LLM LLMConfig
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

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
	Burst     int
}

// ClassifierConfig gates the online classification path.
type ClassifierConfig struct {
	RouteThreshold   float64 // >= -> Route
	ConfirmThreshold float64 // >= -> Confirm, below -> Clarify
	TextTimeout      time.Duration
	VoiceTimeout     time.Duration
}

// OfflineConfig gates the keyword fallback matcher.
type OfflineConfig struct {
	StrongThreshold float64
	WeakThreshold   float64
}

// DecayConfig drives the miss-memory decay math.
type DecayConfig struct {
	HalfLifeDays  float64
	RetentionDays int
}

// PatternConfig holds aggregation floors.
type PatternConfig struct {
	MinSampleSize int
	MinShare      float64
}

// SessionConfig bounds conversation history.
type SessionConfig struct {
	Capacity int
	TTL      time.Duration
	MaxCount int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Decision core
	cfg.Classifier.RouteThreshold = viper.GetFloat64("classifier.route_threshold")
	cfg.Classifier.ConfirmThreshold = viper.GetFloat64("classifier.confirm_threshold")
	cfg.Classifier.TextTimeout = viper.GetDuration("classifier.text_timeout")
	cfg.Classifier.VoiceTimeout = viper.GetDuration("classifier.voice_timeout")

	cfg.Offline.StrongThreshold = viper.GetFloat64("offline.strong_threshold")
	cfg.Offline.WeakThreshold = viper.GetFloat64("offline.weak_threshold")

	cfg.Decay.HalfLifeDays = viper.GetFloat64("decay.half_life_days")
	cfg.Decay.RetentionDays = viper.GetInt("decay.retention_days")

	cfg.Pattern.MinSampleSize = viper.GetInt("pattern.min_sample_size")
	cfg.Pattern.MinShare = viper.GetFloat64("pattern.min_share")

	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxCount = viper.GetInt("session.max_count")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.per_minute", 60)
	viper.SetDefault("rate_limit.burst", 10)

	// Confidence tiers: online and offline paths are behaviorally parallel
	// but independently tunable.
	viper.SetDefault("classifier.route_threshold", 0.75)
	viper.SetDefault("classifier.confirm_threshold", 0.50)
	viper.SetDefault("classifier.text_timeout", "3s")
	viper.SetDefault("classifier.voice_timeout", "4500ms")
	viper.SetDefault("offline.strong_threshold", 0.70)
	viper.SetDefault("offline.weak_threshold", 0.40)

	viper.SetDefault("decay.half_life_days", 14.0)
	viper.SetDefault("decay.retention_days", 90)
	viper.SetDefault("pattern.min_sample_size", 3)
	viper.SetDefault("pattern.min_share", 0.30)

	viper.SetDefault("session.capacity", 10)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_count", 1024)

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "500ms")
}

// expandEnvVar expands ${VAR} references in config values.
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}")
		return os.Getenv(envVar)
	}
	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
