package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath      string     `env:"DB_PATH" envDefault:"data/course.db"`
	RedisURL    string     `env:"REDIS_URL"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir      string     `env:"SPA_DIR" envDefault:"../web/dist"`
	CORSOrigins []string   `env:"CORS_ORIGINS" envSeparator:","`

	VideoDelay   time.Duration `env:"CONTENT_DELAY_VIDEO" envDefault:"1500ms"`
	QuizDelay    time.Duration `env:"CONTENT_DELAY_QUIZ" envDefault:"800ms"`
	ArticleDelay time.Duration `env:"CONTENT_DELAY_ARTICLE" envDefault:"600ms"`
}

// Load reads the environment, after merging in the given dotenv files (".env"
// when none are named). Missing files are skipped; variables already set in
// the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
