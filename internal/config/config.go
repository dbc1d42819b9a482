package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration values.
type Config struct {
	BackendURL string
	ListenAddr string

	TokenStore string // "file" or "redis"
	TokenFile  string
	RedisAddr  string

	AlertWindowDays  int
	ExpiryWindowDays int

	AlertFrom    string
	AlertTo      string
	SMTPServer   string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
}

// Load reads configuration from environment variables (prefix FARMATECH_)
// and an optional farmatech.yaml in the working directory.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("farmatech")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend_url", "http://127.0.0.1:8000/api")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("token_store", "file")
	v.SetDefault("token_file", "farmatech_tokens.json")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("alert_window_days", 30)
	v.SetDefault("expiry_window_days", 90)

	v.SetConfigName("farmatech")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		BackendURL:       v.GetString("backend_url"),
		ListenAddr:       v.GetString("listen_addr"),
		TokenStore:       v.GetString("token_store"),
		TokenFile:        v.GetString("token_file"),
		RedisAddr:        v.GetString("redis_addr"),
		AlertWindowDays:  v.GetInt("alert_window_days"),
		ExpiryWindowDays: v.GetInt("expiry_window_days"),
		AlertFrom:        v.GetString("alert_from"),
		AlertTo:          v.GetString("alert_to"),
		SMTPServer:       v.GetString("smtp_server"),
		SMTPPort:         v.GetString("smtp_port"),
		SMTPUser:         v.GetString("smtp_user"),
		SMTPPassword:     v.GetString("smtp_password"),
	}

	if cfg.TokenStore != "file" && cfg.TokenStore != "redis" {
		return Config{}, fmt.Errorf("invalid token_store %q, must be file or redis", cfg.TokenStore)
	}

	return cfg, nil
}
