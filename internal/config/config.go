package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	API struct {
		BaseURL string
	}
	Session struct {
		Path string
	}
	Messages struct {
		FeedTTL  time.Duration
		AdminTTL time.Duration
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("FEEDBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:4200")
	v.SetDefault("api.baseurl", "http://localhost:5001/")
	v.SetDefault("session.path", "data/session.db")
	v.SetDefault("messages.feedttl", "3s")
	v.SetDefault("messages.adminttl", "5s")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// endpoint paths are concatenated onto the base URL, so it must end
	// with a slash
	if cfg.API.BaseURL != "" && !strings.HasSuffix(cfg.API.BaseURL, "/") {
		cfg.API.BaseURL += "/"
	}

	return cfg, nil
}
