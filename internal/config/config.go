package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`

	Analyzer AnalyzerConfig `envPrefix:"ANALYZER_"`
}

// AnalyzerConfig selects the lexicons and engines the analyzer is built with.
type AnalyzerConfig struct {
	StopWords        string `env:"STOPWORDS" envDefault:"nltk"`
	SentimentEngine  string `env:"SENTIMENT_ENGINE" envDefault:"pattern"`
	SentimentLexicon string `env:"SENTIMENT_LEXICON"`
	EmotionLexicon   string `env:"EMOTION_LEXICON"`
	StripMarkdown    bool   `env:"STRIP_MARKDOWN" envDefault:"false"`
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the optional dotenv files for APP_ENV and then the process
// environment. Variables already set in the environment win.
func Load() (*Config, error) {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}
	for _, file := range []string{"config/envs/.env." + appEnv, ".env"} {
		if err := gotenv.Load(file); err != nil {
			slog.Debug("No env file found, using OS environment", "file", file)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	enums := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"LOG_LEVEL", cfg.LogLevel, []string{"debug", "info", "warn", "error"}},
		{"LOG_FORMAT", cfg.LogFormat, []string{"text", "json"}},
		{"ANALYZER_STOPWORDS", cfg.Analyzer.StopWords, []string{"nltk", "extended"}},
		{"ANALYZER_SENTIMENT_ENGINE", cfg.Analyzer.SentimentEngine, []string{"pattern", "vader"}},
	}
	for _, e := range enums {
		if !contains(e.allowed, e.value) {
			return fmt.Errorf("%s must be one of %v, got %q", e.name, e.allowed, e.value)
		}
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, allowed := range values {
		if allowed == v {
			return true
		}
	}
	return false
}
