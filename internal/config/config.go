package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultBiorxivUserAgent is a desktop browser string; bioRxiv rejects
// requests that do not look like they come from a browser.
const DefaultBiorxivUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Config struct {
	Port             string
	AllowedOrigins   []string
	UpstreamTimeout  time.Duration
	ArxivAPIURL      string
	BiorxivSearchURL string
	BiorxivOrigin    string
	BiorxivUserAgent string
	LogLevel         string
	LogFormat        string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("upstream_timeout", 15*time.Second)
	v.SetDefault("arxiv_api_url", "https://export.arxiv.org/api/query")
	v.SetDefault("biorxiv_search_url", "https://www.biorxiv.org/search/")
	v.SetDefault("biorxiv_origin", "https://www.biorxiv.org")
	v.SetDefault("biorxiv_user_agent", DefaultBiorxivUserAgent)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Load reads .env (if present) into the process environment and builds the
// configuration from environment variables and defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom is Load with a caller-supplied viper instance, so command-line
// flags bound on it take precedence over the environment.
func LoadFrom(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:             v.GetString("port"),
		AllowedOrigins:   splitOrigins(v.GetString("allowed_origins")),
		UpstreamTimeout:  v.GetDuration("upstream_timeout"),
		ArxivAPIURL:      v.GetString("arxiv_api_url"),
		BiorxivSearchURL: v.GetString("biorxiv_search_url"),
		BiorxivOrigin:    strings.TrimRight(v.GetString("biorxiv_origin"), "/"),
		BiorxivUserAgent: v.GetString("biorxiv_user_agent"),
		LogLevel:         strings.ToLower(v.GetString("log_level")),
		LogFormat:        strings.ToLower(v.GetString("log_format")),
	}

	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %q", v.GetString("upstream_timeout"))
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}

	return cfg, nil
}

// AllowsAnyOrigin reports whether CORS should answer every origin with "*".
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.AllowedOrigins) == 0
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
