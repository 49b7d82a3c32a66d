package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"becbot/pkg/moderation"

	"github.com/disgoorg/snowflake/v2"
)

var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	Token       string
	DatabaseURL string
	SentryDSN   string
	Environment string
	LogLevel    slog.Level
	Moderation  moderation.Config
}

// Production reports whether sentry events should be sent.
func (c *Config) Production() bool {
	return c.Environment == "PROD"
}

// LoadConfig reads the configuration from the environment. A .env file should
// already have been loaded by the caller.
func LoadConfig() (*Config, error) {
	c := &Config{
		Token:       os.Getenv("DISCORD_TOKEN"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		Environment: os.Getenv("BECBOT_ENVIRONMENT"),
		LogLevel:    slog.LevelInfo,
		Moderation: moderation.Config{
			LogChannelID: snowflake.GetEnv("LOG_CHANNEL_ID"),
			TessdataDir:  os.Getenv("TESSDATA"),
			Language:     moderation.DefaultLanguage,
			Workers:      moderation.DefaultWorkers,
			QueueSize:    moderation.DefaultQueueSize,
			ExtraTerms:   splitTerms(os.Getenv("BECBOT_BLOCKED_WORDS")),
		},
	}
	if c.Token == "" {
		return nil, fmt.Errorf("%w: DISCORD_TOKEN", ErrMissingConfig)
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingConfig)
	}
	if level := os.Getenv("BECBOT_LOG_LEVEL"); level != "" {
		if err := c.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parsing BECBOT_LOG_LEVEL: %w", err)
		}
	}
	var err error
	if c.Moderation.Workers, err = positiveEnv("BECBOT_SCAN_WORKERS", moderation.DefaultWorkers); err != nil {
		return nil, err
	}
	if c.Moderation.QueueSize, err = positiveEnv("BECBOT_SCAN_QUEUE", moderation.DefaultQueueSize); err != nil {
		return nil, err
	}
	return c, nil
}

func positiveEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func splitTerms(s string) []string {
	var terms []string
	for term := range strings.SplitSeq(s, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, strings.ToLower(term))
		}
	}
	return terms
}
