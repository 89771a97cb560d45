package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          string   `env:"PORT" envDefault:"8080"`
	DBPath        string   `env:"DB_PATH" envDefault:"./data/focusboard.db"`
	MigrationsDir string   `env:"MIGRATIONS_DIR" envDefault:"./migrations"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`

	AI AIConfig `envPrefix:"AI_"`
}

// AIConfig points the chat passthrough at an OpenAI-compatible endpoint.
type AIConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.openai.com/v1"`
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
