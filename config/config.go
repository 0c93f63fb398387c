package config

import (
	"errors"
	"fmt"
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

	// Relay specifics
	Registry RegistryConfig
	Telegram TelegramConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TestRoutes mounts /test/* outside production.
	TestRoutes bool
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RegistryConfig locates the chat binding state file.
type RegistryConfig struct {
	Path    string
	BaseURL string // webhook URL template containing {uuid}; seeds an empty state
}

type TelegramConfig struct {
	BotToken       string // seeds an empty state; the state file wins when it has one
	APIURL         string
	WebhookURL     string
	WebhookSecret  string
	NgrokAPIURL    string
	PollTimeout    time.Duration
	RequestTimeout time.Duration
}

type WebhookConfig struct {
	Secret    string
	DedupSize int
	DedupTTL  time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
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
	cfg.HTTPServer.TestRoutes = viper.GetBool("http_server.test_routes")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Registry
	cfg.Registry.Path = viper.GetString("registry.path")
	cfg.Registry.BaseURL = viper.GetString("registry.base_url")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.APIURL = viper.GetString("telegram.api_url")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	cfg.Telegram.PollTimeout = viper.GetDuration("telegram.poll_timeout")
	cfg.Telegram.RequestTimeout = viper.GetDuration("telegram.request_timeout")

	// Webhooks
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.DedupSize = viper.GetInt("webhook.dedup_size")
	cfg.Webhook.DedupTTL = viper.GetDuration("webhook.dedup_ttl")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Registry.Path == "" {
		return errors.New("registry.path is required")
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port)
	}
	if c.Registry.BaseURL != "" && !strings.Contains(c.Registry.BaseURL, "{uuid}") {
		return fmt.Errorf("registry.base_url %q must contain {uuid}", c.Registry.BaseURL)
	}
	if c.Telegram.PollTimeout < 0 || c.Telegram.RequestTimeout < 0 {
		return errors.New("telegram timeouts must not be negative")
	}
	if c.Webhook.DedupSize < 0 {
		return errors.New("webhook.dedup_size must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.test_routes", false)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("registry.path", "data/state.yaml")
	viper.SetDefault("telegram.api_url", "")
	viper.SetDefault("telegram.poll_timeout", "30s")
	viper.SetDefault("telegram.request_timeout", "15s")
	viper.SetDefault("webhook.dedup_size", 1024)
	viper.SetDefault("webhook.dedup_ttl", "1h")
}
