package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
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
	Metrics    MetricsConfig

	// Travel assistant specifics
	LLM       LLMConfig
	Assistant AssistantConfig
	Weather   WeatherConfig
	Telegram  TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	NgrokAPIURL   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxRetryDelay   string           `yaml:"max_retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`

	// Generation knobs shared by every call site
	Temperature         float64 `yaml:"temperature"`
	MaxTokensTool       int     `yaml:"max_tokens_tool"`
	MaxTokensGeneration int     `yaml:"max_tokens_generation"`
	MaxTokensDebug      int     `yaml:"max_tokens_debug"`
	HistoryWindow       int     `yaml:"history_window"`
	CallDelaySeconds    float64 `yaml:"call_delay_seconds"`
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

// AssistantConfig drives the response orchestrator and session lifecycle.
type AssistantConfig struct {
	MaxHistory         int
	ShowChainOfThought bool
	SessionTTL         time.Duration
}

// WeatherConfig configures the OpenWeatherMap client and snapshot cache.
type WeatherConfig struct {
	APIKey        string
	BaseURL       string
	GeoURL        string
	Timeout       time.Duration
	CacheTTL      time.Duration
	CacheSize     int
	RetryAttempts int
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration
}

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
)

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()
	bindLegacyEnv()

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
	cfg.HTTPServer.AllowedOrigins = viper.GetStringSlice("http_server.allowed_origins")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Path = viper.GetString("metrics.path")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxRetryDelay = viper.GetString("llm.max_retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokensTool = viper.GetInt("llm.max_tokens_tool")
	cfg.LLM.MaxTokensGeneration = viper.GetInt("llm.max_tokens_generation")
	cfg.LLM.MaxTokensDebug = viper.GetInt("llm.max_tokens_debug")
	cfg.LLM.HistoryWindow = viper.GetInt("llm.history_window")
	cfg.LLM.CallDelaySeconds = viper.GetFloat64("llm.call_delay_seconds")

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

	// Environment-only setups get a single Groq provider.
	if len(cfg.LLM.Providers) == 0 {
		if groqKey := viper.GetString("groq.api_key"); groqKey != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "groq",
				Enabled:  true,
				Priority: 1,
				APIKey:   groqKey,
				BaseURL:  DefaultGroqBaseURL,
				Model:    viper.GetString("groq.model"),
			})
		}
	}

	// Assistant
	cfg.Assistant.MaxHistory = viper.GetInt("assistant.max_history")
	cfg.Assistant.ShowChainOfThought = viper.GetBool("assistant.show_chain_of_thought")
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")

	// Weather
	cfg.Weather.APIKey = expandEnvVar(viper.GetString("weather.api_key"))
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.GeoURL = viper.GetString("weather.geo_url")
	cfg.Weather.Timeout = viper.GetDuration("weather.timeout")
	cfg.Weather.CacheTTL = viper.GetDuration("weather.cache_ttl")
	cfg.Weather.CacheSize = viper.GetInt("weather.cache_size")
	cfg.Weather.RetryAttempts = viper.GetInt("weather.retry_attempts")
	cfg.Weather.RetryDelay = viper.GetDuration("weather.retry_delay")
	cfg.Weather.MaxRetryDelay = viper.GetDuration("weather.max_retry_delay")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allowed_origins", []string{"*"})
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "4s")
	viper.SetDefault("llm.max_retry_delay", "10s")
	viper.SetDefault("llm.max_total_timeout", "90s")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.max_tokens_tool", 128)
	viper.SetDefault("llm.max_tokens_generation", 1024)
	viper.SetDefault("llm.max_tokens_debug", 1024)
	viper.SetDefault("llm.history_window", 10)
	viper.SetDefault("llm.call_delay_seconds", 1.0)
	viper.SetDefault("groq.model", DefaultGroqModel)

	// Assistant defaults
	viper.SetDefault("assistant.max_history", 10)
	viper.SetDefault("assistant.show_chain_of_thought", false)
	viper.SetDefault("assistant.session_ttl", "30m")

	// Weather defaults
	viper.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("weather.geo_url", "https://api.openweathermap.org/geo/1.0")
	viper.SetDefault("weather.timeout", "10s")
	viper.SetDefault("weather.cache_ttl", "300s")
	viper.SetDefault("weather.cache_size", 512)
	viper.SetDefault("weather.retry_attempts", 3)
	viper.SetDefault("weather.retry_delay", "2s")
	viper.SetDefault("weather.max_retry_delay", "8s")

	viper.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")
}

// bindLegacyEnv maps the flat variable names used by existing .env files.
func bindLegacyEnv() {
	_ = viper.BindEnv("groq.api_key", "GROQ_API_KEY")
	_ = viper.BindEnv("groq.model", "GROQ_MODEL", "MODEL_NAME")
	_ = viper.BindEnv("weather.api_key", "WEATHER_API_KEY", "OPENWEATHER_API_KEY")
	_ = viper.BindEnv("llm.temperature", "LLM_TEMPERATURE", "TEMPERATURE")
	_ = viper.BindEnv("llm.max_tokens_tool", "LLM_MAX_TOKENS_TOOL", "MAX_TOKENS_TOOL")
	_ = viper.BindEnv("llm.max_tokens_generation", "LLM_MAX_TOKENS_GENERATION", "MAX_TOKENS_GENERATION")
	_ = viper.BindEnv("llm.max_tokens_debug", "LLM_MAX_TOKENS_DEBUG", "MAX_TOKENS_DEBUG")
	_ = viper.BindEnv("llm.history_window", "LLM_HISTORY_WINDOW", "MAX_CONVERSATION_HISTORY")
	_ = viper.BindEnv("llm.call_delay_seconds", "LLM_CALL_DELAY_SECONDS", "API_DELAY_SECONDS")
	_ = viper.BindEnv("assistant.max_history", "ASSISTANT_MAX_HISTORY", "MAX_CONVERSATION_HISTORY")
	_ = viper.BindEnv("assistant.show_chain_of_thought", "ASSISTANT_SHOW_CHAIN_OF_THOUGHT", "SHOW_CHAIN_OF_THOUGHT")
}

// Validate reports configuration that would make the service unusable.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}
	if c.Weather.APIKey == "" {
		return errors.New("weather API key is required (weather.api_key or WEATHER_API_KEY)")
	}
	if c.LLM.MaxTokensTool <= 0 || c.LLM.MaxTokensGeneration <= 0 || c.LLM.MaxTokensDebug <= 0 {
		return errors.New("llm token limits must be positive")
	}
	if c.Assistant.MaxHistory <= 0 {
		return errors.New("assistant.max_history must be positive")
	}
	return nil
}

// RetryDelayDuration parses the LLM retry delay, falling back to def.
func (c LLMConfig) RetryDelayDuration(def time.Duration) time.Duration {
	return parseDuration(c.RetryDelay, def)
}

// MaxRetryDelayDuration parses the LLM backoff cap, falling back to def.
func (c LLMConfig) MaxRetryDelayDuration(def time.Duration) time.Duration {
	return parseDuration(c.MaxRetryDelay, def)
}

// MaxTotalTimeoutDuration parses the fallback chain timeout, falling back to def.
func (c LLMConfig) MaxTotalTimeoutDuration(def time.Duration) time.Duration {
	return parseDuration(c.MaxTotalTimeout, def)
}

// CallDelay returns the minimum spacing between two LLM calls.
func (c LLMConfig) CallDelay() time.Duration {
	return time.Duration(c.CallDelaySeconds * float64(time.Second))
}

func parseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return d
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set GROQ_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
