package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string        `env:"GOPORT" envDefault:"8000"`
	GithubApiUrl string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	GithubToken  string        `env:"GITHUB_TOKEN"`
	GithubRPS    float64       `env:"GITHUB_RPS" envDefault:"5"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"static"`
	PHApiKey     string        `env:"POSTHOG_API_KEY"`
	PHUrl        string        `env:"POSTHOG_URL"`
	OTLPEndpoint string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	Version      string        `env:"APP_VERSION" envDefault:"dev"`
}

func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if config.GithubRPS <= 0 {
		return Config{}, fmt.Errorf("GITHUB_RPS must be positive, got %v", config.GithubRPS)
	}
	return config, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// GithubHeaders are sent with every GitHub API request.
func (c Config) GithubHeaders() []string {
	headers := []string{
		"Accept: application/vnd.github+json",
		"X-GitHub-Api-Version: 2022-11-28",
		fmt.Sprintf("User-Agent: ghexplorer/%s", c.Version),
	}
	if c.GithubToken != "" {
		headers = append(headers, fmt.Sprintf("Authorization: Bearer %s", c.GithubToken))
	}
	return headers
}
